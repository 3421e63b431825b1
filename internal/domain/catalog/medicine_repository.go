package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/shared"
)

// MedicineRepository defines the interface for medicine persistence.
// All methods are owner-scoped.
type MedicineRepository interface {
	// FindByID finds a medicine by ID for an owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Medicine, error)

	// FindByBarcode finds a medicine by barcode for an owner
	FindByBarcode(ctx context.Context, ownerID uuid.UUID, barcode string) (*Medicine, error)

	// FindAll finds all medicines for an owner
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Medicine, error)

	// FindLowStock finds medicines at or below their reorder level
	FindLowStock(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Medicine, error)

	// Save creates or updates a medicine
	Save(ctx context.Context, medicine *Medicine) error

	// DeductStock atomically decrements the aggregate stock counter,
	// guarded so the counter never goes negative. Returns
	// shared.ErrInsufficientStock when the guard fails.
	DeductStock(ctx context.Context, ownerID, id uuid.UUID, quantity int) error

	// AddStock atomically increments the aggregate stock counter
	AddStock(ctx context.Context, ownerID, id uuid.UUID, quantity int) error

	// Delete deletes a medicine for an owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// Count returns the number of medicines for an owner
	Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
