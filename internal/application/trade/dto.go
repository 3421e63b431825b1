package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openpharm/backend/internal/domain/trade"
)

// SellItemRequest is one requested line of a sale
type SellItemRequest struct {
	Barcode  string `json:"barcode" binding:"required,min=1,max=50"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// SellRequest represents a multi-item sale request
type SellRequest struct {
	Items        []SellItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName string            `json:"customer_name" binding:"max=200"`
}

// QuickSaleRequest is the degenerate single-item sale used at the
// counter: scan a barcode, quantity defaults to one.
type QuickSaleRequest struct {
	Barcode      string `json:"barcode" binding:"required,min=1,max=50"`
	Quantity     int    `json:"quantity" binding:"omitempty,gt=0"`
	CustomerName string `json:"customer_name" binding:"max=200"`
}

// UpdateSaleRequest carries the only field a sale allows changing
type UpdateSaleRequest struct {
	CustomerName string `json:"customer_name" binding:"max=200"`
}

// MedicineSummary is the display projection of a sold medicine
type MedicineSummary struct {
	ID        uuid.UUID `json:"id"`
	BrandName string    `json:"brand_name"`
	Barcode   string    `json:"barcode"`
}

// BatchSummary is the display projection of the batch a line came from
type BatchSummary struct {
	ID         uuid.UUID `json:"id"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// SoldBySummary is the display projection of the seller
type SoldBySummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// SaleItemResponse represents one sale line in API responses. Medicine
// and Batch are nil when the referenced records have since been deleted.
type SaleItemResponse struct {
	ID       uuid.UUID        `json:"id"`
	Medicine *MedicineSummary `json:"medicine"`
	Batch    *BatchSummary    `json:"batch"`
	Quantity int              `json:"quantity"`
	Price    decimal.Decimal  `json:"price"`
	Total    decimal.Decimal  `json:"total"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID           uuid.UUID          `json:"id"`
	Items        []SaleItemResponse `json:"items"`
	GrandTotal   decimal.Decimal    `json:"grand_total"`
	CustomerName string             `json:"customer_name"`
	Date         time.Time          `json:"date"`
	SoldBy       *SoldBySummary     `json:"sold_by"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// CreateReturnRequest represents a request to record a medicine return
type CreateReturnRequest struct {
	StockEntryID uuid.UUID `json:"stock_entry_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,gt=0"`
	Reason       string    `json:"reason" binding:"max=500"`
	ReturnType   string    `json:"return_type" binding:"required,oneof=customer supplier"`
}

// UpdateReturnRequest updates a return's mutable fields
type UpdateReturnRequest struct {
	Reason     *string `json:"reason" binding:"omitempty,max=500"`
	ReturnType *string `json:"return_type" binding:"omitempty,oneof=customer supplier"`
}

// ReturnResponse represents a medicine return in API responses
type ReturnResponse struct {
	ID           uuid.UUID `json:"id"`
	StockEntryID uuid.UUID `json:"stock_entry_id"`
	MedicineID   uuid.UUID `json:"medicine_id"`
	Quantity     int       `json:"quantity"`
	Reason       string    `json:"reason"`
	ReturnType   string    `json:"return_type"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToReturnResponse converts a domain return to a response DTO
func ToReturnResponse(r *trade.MedicineReturn) *ReturnResponse {
	return &ReturnResponse{
		ID:           r.ID,
		StockEntryID: r.StockEntryID,
		MedicineID:   r.MedicineID,
		Quantity:     r.Quantity,
		Reason:       r.Reason,
		ReturnType:   string(r.ReturnType),
		Date:         r.Date,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToReturnResponses converts a slice of domain returns
func ToReturnResponses(returns []trade.MedicineReturn) []*ReturnResponse {
	responses := make([]*ReturnResponse, len(returns))
	for i := range returns {
		responses[i] = ToReturnResponse(&returns[i])
	}
	return responses
}
