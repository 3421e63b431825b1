package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openpharm/backend/internal/domain/shared"
)

// Sale represents one completed point-of-sale transaction. It is
// immutable after creation except for the customer name; deleting a sale
// does not restore the stock it consumed.
type Sale struct {
	shared.OwnedAggregateRoot
	Items        []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	GrandTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CustomerName string          `gorm:"type:varchar(200)"`
	Date         time.Time       `gorm:"not null;index"`
	SoldByID     uuid.UUID       `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents one line of a sale. BatchID records which batch the
// quantity was deducted from; it is nullable so a sale line survives its
// batch being deleted.
type SaleItem struct {
	shared.BaseEntity
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MedicineID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchID    *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity   int             `gorm:"not null;check:quantity > 0"`
	Price      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// NewSale creates an empty sale for an owner. The owner is also recorded
// as the seller.
func NewSale(ownerID uuid.UUID, customerName string) *Sale {
	return &Sale{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Items:              make([]SaleItem, 0),
		GrandTotal:         decimal.Zero,
		CustomerName:       strings.TrimSpace(customerName),
		Date:               time.Now(),
		SoldByID:           ownerID,
	}
}

// AddItem appends a line item, computing its total from quantity and unit
// price, and folds it into the grand total.
func (s *Sale) AddItem(medicineID uuid.UUID, batchID *uuid.UUID, quantity int, price decimal.Decimal) error {
	if medicineID == uuid.Nil {
		return shared.NewDomainError("INVALID_MEDICINE", "Medicine reference cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	item := SaleItem{
		BaseEntity: shared.NewBaseEntity(),
		SaleID:     s.ID,
		MedicineID: medicineID,
		BatchID:    batchID,
		Quantity:   quantity,
		Price:      price,
		Total:      price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	s.Items = append(s.Items, item)
	s.recalculateGrandTotal()

	return nil
}

// SetCustomerName updates the only field a sale allows changing after
// creation.
func (s *Sale) SetCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if len(customerName) > 200 {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 200 characters")
	}

	s.CustomerName = customerName
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsEmpty reports whether the sale has no line items
func (s *Sale) IsEmpty() bool {
	return len(s.Items) == 0
}

// TotalQuantity returns the summed quantity across all line items
func (s *Sale) TotalQuantity() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

func (s *Sale) recalculateGrandTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Total)
	}
	s.GrandTotal = total
}
