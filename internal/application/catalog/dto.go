package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openpharm/backend/internal/domain/catalog"
)

// AddMedicineRequest represents a request to add a medicine. When a
// medicine with the same barcode already exists for the owner, only Stock
// is honored (added to the existing counter) and everything else is
// ignored.
type AddMedicineRequest struct {
	BrandName    string          `json:"brand_name" binding:"required,min=1,max=200"`
	GenericName  string          `json:"generic_name" binding:"max=200"`
	Strength     string          `json:"strength" binding:"max=50"`
	Unit         string          `json:"unit" binding:"required,medicineunit"`
	Manufacturer string          `json:"manufacturer" binding:"max=200"`
	Category     string          `json:"category" binding:"max=100"`
	Barcode      string          `json:"barcode" binding:"required,min=1,max=50"`
	Stock        int             `json:"stock" binding:"min=0"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ReorderLevel int             `json:"reorder_level" binding:"min=0"`
}

// UpdateMedicineRequest represents a request to update a medicine's
// descriptive attributes and pricing. The stock counter is not updatable
// here; it only moves through stock entries, sales, and returns.
type UpdateMedicineRequest struct {
	BrandName    *string          `json:"brand_name" binding:"omitempty,min=1,max=200"`
	GenericName  *string          `json:"generic_name" binding:"omitempty,max=200"`
	Strength     *string          `json:"strength" binding:"omitempty,max=50"`
	Unit         *string          `json:"unit" binding:"omitempty,medicineunit"`
	Manufacturer *string          `json:"manufacturer" binding:"omitempty,max=200"`
	Category     *string          `json:"category" binding:"omitempty,max=100"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
	ReorderLevel *int             `json:"reorder_level" binding:"omitempty,min=0"`
}

// MedicineResponse represents a medicine in API responses
type MedicineResponse struct {
	ID           uuid.UUID       `json:"id"`
	BrandName    string          `json:"brand_name"`
	GenericName  string          `json:"generic_name"`
	Strength     string          `json:"strength"`
	Unit         string          `json:"unit"`
	Manufacturer string          `json:"manufacturer"`
	Category     string          `json:"category"`
	Barcode      string          `json:"barcode"`
	Stock        int             `json:"stock"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ReorderLevel int             `json:"reorder_level"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToMedicineResponse converts a domain medicine to a response DTO
func ToMedicineResponse(m *catalog.Medicine) *MedicineResponse {
	return &MedicineResponse{
		ID:           m.ID,
		BrandName:    m.BrandName,
		GenericName:  m.GenericName,
		Strength:     m.Strength,
		Unit:         string(m.Unit),
		Manufacturer: m.Manufacturer,
		Category:     m.Category,
		Barcode:      m.Barcode,
		Stock:        m.Stock,
		SalePrice:    m.SalePrice,
		ReorderLevel: m.ReorderLevel,
		LowStock:     m.IsLowStock(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToMedicineResponses converts a slice of domain medicines
func ToMedicineResponses(medicines []catalog.Medicine) []*MedicineResponse {
	responses := make([]*MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = ToMedicineResponse(&medicines[i])
	}
	return responses
}
