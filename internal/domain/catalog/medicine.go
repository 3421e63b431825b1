package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openpharm/backend/internal/domain/shared"
)

// MedicineUnit represents the dispensing unit of a medicine
type MedicineUnit string

const (
	UnitTablet MedicineUnit = "tablet"
	UnitStrip  MedicineUnit = "strip"
	UnitBottle MedicineUnit = "bottle"
	UnitSyrup  MedicineUnit = "syrup"
)

// ValidUnits lists every accepted medicine unit
var ValidUnits = []MedicineUnit{UnitTablet, UnitStrip, UnitBottle, UnitSyrup}

// Medicine represents a sellable medicine in the catalog.
// Stock is an aggregate counter: it is incremented by stock-entry ingestion
// and decremented by sales, independently of per-batch quantities. The two
// counters are expected to agree but nothing reconciles them; batch
// selection treats its own quantities as authoritative.
type Medicine struct {
	shared.BaseAggregateRoot
	// OwnerID is declared here instead of through shared.OwnedAggregateRoot
	// so the barcode uniqueness constraint can span (owner_id, barcode).
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_medicine_owner_barcode,priority:1"`
	BrandName    string          `gorm:"type:varchar(200);not null"`
	GenericName  string          `gorm:"type:varchar(200)"`
	Strength     string          `gorm:"type:varchar(50)"`
	Unit         MedicineUnit    `gorm:"type:varchar(20);not null"`
	Manufacturer string          `gorm:"type:varchar(200)"`
	Category     string          `gorm:"type:varchar(100)"`
	Barcode      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_medicine_owner_barcode,priority:2"`
	Stock        int             `gorm:"not null;default:0;check:stock >= 0"`
	SalePrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReorderLevel int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Medicine) TableName() string {
	return "medicines"
}

// NewMedicine creates a new medicine
func NewMedicine(ownerID uuid.UUID, brandName, barcode string, unit MedicineUnit) (*Medicine, error) {
	if err := validateBrandName(brandName); err != nil {
		return nil, err
	}
	if err := validateBarcode(barcode); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	return &Medicine{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		BrandName:         strings.TrimSpace(brandName),
		Barcode:           strings.TrimSpace(barcode),
		Unit:              unit,
		SalePrice:         decimal.Zero,
	}, nil
}

// Update updates the medicine's descriptive attributes
func (m *Medicine) Update(brandName, genericName, strength, manufacturer, category string) error {
	if err := validateBrandName(brandName); err != nil {
		return err
	}

	m.BrandName = strings.TrimSpace(brandName)
	m.GenericName = strings.TrimSpace(genericName)
	m.Strength = strings.TrimSpace(strength)
	m.Manufacturer = strings.TrimSpace(manufacturer)
	m.Category = strings.TrimSpace(category)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetUnit sets the dispensing unit
func (m *Medicine) SetUnit(unit MedicineUnit) error {
	if err := validateUnit(unit); err != nil {
		return err
	}

	m.Unit = unit
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetSalePrice sets the selling price per unit
func (m *Medicine) SetSalePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	m.SalePrice = price
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetReorderLevel sets the low-stock alert threshold
func (m *Medicine) SetReorderLevel(level int) error {
	if level < 0 {
		return shared.NewDomainError("INVALID_REORDER_LEVEL", "Reorder level cannot be negative")
	}

	m.ReorderLevel = level
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// AddStock increments the aggregate stock counter. Used by stock-entry
// ingestion and by the upsert-on-add restock shortcut.
func (m *Medicine) AddStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	m.Stock += quantity
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// DeductStock decrements the aggregate stock counter
func (m *Medicine) DeductStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if m.Stock < quantity {
		return shared.ErrInsufficientStock
	}

	m.Stock -= quantity
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// HasStock reports whether the aggregate counter can cover a quantity
func (m *Medicine) HasStock(quantity int) bool {
	return m.Stock >= quantity
}

// IsLowStock reports whether stock has fallen to the reorder level
func (m *Medicine) IsLowStock() bool {
	return m.ReorderLevel > 0 && m.Stock <= m.ReorderLevel
}

func validateBrandName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_BRAND_NAME", "Brand name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_BRAND_NAME", "Brand name cannot exceed 200 characters")
	}
	return nil
}

func validateBarcode(barcode string) error {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return shared.NewDomainError("INVALID_BARCODE", "Barcode cannot be empty")
	}
	if len(barcode) > 50 {
		return shared.NewDomainError("INVALID_BARCODE", "Barcode cannot exceed 50 characters")
	}
	return nil
}

func validateUnit(unit MedicineUnit) error {
	for _, u := range ValidUnits {
		if unit == u {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_UNIT", "Unit must be one of tablet, strip, bottle, syrup")
}
