package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/shared"
)

// SaleRepository defines the interface for sale persistence.
// All methods are owner-scoped.
type SaleRepository interface {
	// FindByID finds a sale with its line items for an owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Sale, error)

	// FindAll finds all sales with line items for an owner
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Sale, error)

	// Save creates or updates a sale with its line items
	Save(ctx context.Context, sale *Sale) error

	// Delete deletes a sale and its line items for an owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// Count returns the number of sales for an owner
	Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}

// MedicineReturnRepository defines the interface for return persistence.
// All methods are owner-scoped.
type MedicineReturnRepository interface {
	// FindByID finds a return by ID for an owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*MedicineReturn, error)

	// FindAll finds all returns for an owner
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]MedicineReturn, error)

	// Save creates or updates a return
	Save(ctx context.Context, ret *MedicineReturn) error

	// Delete deletes a return for an owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// Count returns the number of returns for an owner
	Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
