package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/partner"
)

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"omitempty,email,max=320"`
	Contact string `json:"contact" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
	Status  string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,email,max=320"`
	Contact *string `json:"contact" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Status  *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Contact:   s.Contact,
		Address:   s.Address,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []*SupplierResponse {
	responses := make([]*SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
