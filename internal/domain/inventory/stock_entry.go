package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openpharm/backend/internal/domain/shared"
)

// StockEntry represents one received shipment line (a batch) of a
// medicine: its own remaining quantity, cost, and expiry, tracked
// independently of the medicine's aggregate stock counter. Quantity is
// decremented by sales; a batch that reaches zero stays as a historical
// record and simply never qualifies for selection again.
type StockEntry struct {
	shared.OwnedAggregateRoot
	MedicineID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceNo   string          `gorm:"type:varchar(100)"`
	InvoiceDate time.Time       `gorm:"not null"`
	Quantity    int             `gorm:"not null;check:quantity >= 0"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MRP         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ExpiryDate  time.Time       `gorm:"not null;index"`
	// Barcode is a denormalized copy of the medicine's barcode, kept so
	// batch rows remain readable after the medicine is deleted.
	Barcode string `gorm:"type:varchar(50);not null;index"`
}

// TableName returns the table name for GORM
func (StockEntry) TableName() string {
	return "stock_entries"
}

// NewStockEntry creates a new batch from one shipment line
func NewStockEntry(
	ownerID, medicineID, supplierID uuid.UUID,
	barcode, invoiceNo string,
	invoiceDate time.Time,
	quantity int,
	costPrice, mrp decimal.Decimal,
	expiryDate time.Time,
) (*StockEntry, error) {
	if medicineID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MEDICINE", "Medicine reference cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier reference cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if costPrice.IsNegative() || mrp.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	if !expiryDate.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_EXPIRY", "Expiry date must be in the future")
	}

	return &StockEntry{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		MedicineID:         medicineID,
		SupplierID:         supplierID,
		Barcode:            strings.TrimSpace(barcode),
		InvoiceNo:          strings.TrimSpace(invoiceNo),
		InvoiceDate:        invoiceDate,
		Quantity:           quantity,
		CostPrice:          costPrice,
		MRP:                mrp,
		ExpiryDate:         expiryDate,
	}, nil
}

// IsExpired reports whether the batch has passed its expiry date
func (s *StockEntry) IsExpired(now time.Time) bool {
	return s.ExpiryDate.Before(now)
}

// HasStock reports whether the batch alone can cover a quantity
func (s *StockEntry) HasStock(quantity int) bool {
	return s.Quantity >= quantity
}

// Deduct removes quantity from the batch
func (s *StockEntry) Deduct(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if s.Quantity < quantity {
		return shared.ErrInsufficientBatchStock
	}

	s.Quantity -= quantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Restock adds quantity back to the batch (customer returns)
func (s *StockEntry) Restock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	s.Quantity += quantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// UpdateInvoice updates the shipment's invoice fields
func (s *StockEntry) UpdateInvoice(invoiceNo string, invoiceDate time.Time) {
	s.InvoiceNo = strings.TrimSpace(invoiceNo)
	s.InvoiceDate = invoiceDate
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// UpdatePricing updates the batch's cost and retail prices
func (s *StockEntry) UpdatePricing(costPrice, mrp decimal.Decimal) error {
	if costPrice.IsNegative() || mrp.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	s.CostPrice = costPrice
	s.MRP = mrp
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetQuantity replaces the remaining quantity (manual correction)
func (s *StockEntry) SetQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	s.Quantity = quantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetExpiryDate replaces the batch expiry date
func (s *StockEntry) SetExpiryDate(expiryDate time.Time) error {
	if expiryDate.IsZero() {
		return shared.NewDomainError("INVALID_EXPIRY", "Expiry date cannot be empty")
	}

	s.ExpiryDate = expiryDate
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetSupplier reassigns the batch to another supplier
func (s *StockEntry) SetSupplier(supplierID uuid.UUID) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier reference cannot be empty")
	}

	s.SupplierID = supplierID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
