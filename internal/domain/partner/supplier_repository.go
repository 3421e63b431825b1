package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/shared"
)

// SupplierRepository defines the interface for supplier persistence.
// Every method is scoped to an owner; a supplier belonging to a different
// owner behaves as if it does not exist.
type SupplierRepository interface {
	// FindByID finds a supplier by ID for an owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Supplier, error)

	// FindAll finds all suppliers for an owner
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Supplier, error)

	// FindByName finds a supplier by exact name for an owner
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Delete deletes a supplier for an owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// Count returns the number of suppliers for an owner
	Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
