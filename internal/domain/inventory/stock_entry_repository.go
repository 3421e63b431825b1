package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/shared"
)

// StockEntryRepository defines the interface for batch persistence.
// All methods are owner-scoped.
type StockEntryRepository interface {
	// FindByID finds a batch by ID for an owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*StockEntry, error)

	// FindAll finds all batches for an owner
	FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]StockEntry, error)

	// FindByMedicine finds all batches of one medicine for an owner
	FindByMedicine(ctx context.Context, ownerID, medicineID uuid.UUID) ([]StockEntry, error)

	// FindAvailable finds batches of one medicine with quantity > 0 and an
	// expiry date not before now, ordered by expiry ascending (FEFO)
	FindAvailable(ctx context.Context, ownerID, medicineID uuid.UUID, now time.Time) ([]*StockEntry, error)

	// FindExpiringBefore finds unexhausted batches expiring before a cutoff
	FindExpiringBefore(ctx context.Context, ownerID uuid.UUID, cutoff time.Time, filter shared.Filter) ([]StockEntry, error)

	// Save creates or updates a batch
	Save(ctx context.Context, entry *StockEntry) error

	// DeductQuantity atomically decrements a batch's quantity, guarded so
	// it never goes negative. Returns shared.ErrInsufficientBatchStock
	// when the guard fails.
	DeductQuantity(ctx context.Context, ownerID, id uuid.UUID, quantity int) error

	// AddQuantity atomically increments a batch's quantity
	AddQuantity(ctx context.Context, ownerID, id uuid.UUID, quantity int) error

	// Delete deletes a batch for an owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// Count returns the number of batches for an owner
	Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
