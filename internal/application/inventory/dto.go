package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openpharm/backend/internal/domain/inventory"
)

// BatchLine is one shipment line inside a stock-entry submission
type BatchLine struct {
	Barcode    string          `json:"barcode" binding:"required,min=1,max=50"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	MRP        decimal.Decimal `json:"mrp"`
	ExpiryDate time.Time       `json:"expiry_date" binding:"required"`
}

// AddStockEntriesRequest represents one incoming shipment: a supplier
// invoice carrying one or more batch lines
type AddStockEntriesRequest struct {
	SupplierID  uuid.UUID   `json:"supplier_id" binding:"required"`
	InvoiceNo   string      `json:"invoice_no" binding:"max=100"`
	InvoiceDate time.Time   `json:"invoice_date" binding:"required"`
	Batches     []BatchLine `json:"batches" binding:"required,min=1,dive"`
}

// UpdateStockEntryRequest represents a request to correct a batch.
// Only invoice fields, quantity, prices, expiry, and the supplier
// reference are mutable; the medicine link and barcode are fixed.
type UpdateStockEntryRequest struct {
	InvoiceNo   *string          `json:"invoice_no" binding:"omitempty,max=100"`
	InvoiceDate *time.Time       `json:"invoice_date"`
	Quantity    *int             `json:"quantity" binding:"omitempty,min=0"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	MRP         *decimal.Decimal `json:"mrp"`
	ExpiryDate  *time.Time       `json:"expiry_date"`
	SupplierID  *uuid.UUID       `json:"supplier_id"`
}

// StockEntryResponse represents a batch in API responses
type StockEntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	MedicineID  uuid.UUID       `json:"medicine_id"`
	SupplierID  uuid.UUID       `json:"supplier_id"`
	Barcode     string          `json:"barcode"`
	InvoiceNo   string          `json:"invoice_no"`
	InvoiceDate time.Time       `json:"invoice_date"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	MRP         decimal.Decimal `json:"mrp"`
	ExpiryDate  time.Time       `json:"expiry_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AddStockEntriesResult reports how a shipment submission went: lines
// with unknown barcodes are skipped, not failed.
type AddStockEntriesResult struct {
	Created         []*StockEntryResponse `json:"created"`
	SkippedBarcodes []string              `json:"skipped_barcodes"`
}

// ToStockEntryResponse converts a domain batch to a response DTO
func ToStockEntryResponse(e *inventory.StockEntry) *StockEntryResponse {
	return &StockEntryResponse{
		ID:          e.ID,
		MedicineID:  e.MedicineID,
		SupplierID:  e.SupplierID,
		Barcode:     e.Barcode,
		InvoiceNo:   e.InvoiceNo,
		InvoiceDate: e.InvoiceDate,
		Quantity:    e.Quantity,
		CostPrice:   e.CostPrice,
		MRP:         e.MRP,
		ExpiryDate:  e.ExpiryDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToStockEntryResponses converts a slice of domain batches
func ToStockEntryResponses(entries []inventory.StockEntry) []*StockEntryResponse {
	responses := make([]*StockEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToStockEntryResponse(&entries[i])
	}
	return responses
}
