package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openpharm/backend/internal/domain/inventory"
	"github.com/openpharm/backend/internal/domain/shared"
)

// GormStockEntryRepository implements StockEntryRepository using GORM
type GormStockEntryRepository struct {
	db *gorm.DB
}

// NewGormStockEntryRepository creates a new GormStockEntryRepository
func NewGormStockEntryRepository(db *gorm.DB) *GormStockEntryRepository {
	return &GormStockEntryRepository{db: db}
}

// FindByID finds a batch by ID for an owner
func (r *GormStockEntryRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*inventory.StockEntry, error) {
	var entry inventory.StockEntry
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll finds all batches for an owner matching the filter
func (r *GormStockEntryRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.StockEntry, error) {
	var entries []inventory.StockEntry
	query := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("owner_id = ?", ownerID)
	query = r.applySearch(query, filter)
	query = applyPagination(query, filter, "created_at DESC")

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByMedicine finds all batches of one medicine for an owner
func (r *GormStockEntryRepository) FindByMedicine(ctx context.Context, ownerID, medicineID uuid.UUID) ([]inventory.StockEntry, error) {
	var entries []inventory.StockEntry
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND medicine_id = ?", ownerID, medicineID).
		Order("expiry_date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindAvailable finds unexhausted, unexpired batches of one medicine,
// ordered earliest expiry first so sales consume stock FEFO. CreatedAt
// breaks ties between batches expiring the same day.
func (r *GormStockEntryRepository) FindAvailable(ctx context.Context, ownerID, medicineID uuid.UUID, now time.Time) ([]*inventory.StockEntry, error) {
	var entries []*inventory.StockEntry
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND medicine_id = ? AND quantity > 0 AND expiry_date >= ?",
			ownerID, medicineID, now).
		Order("expiry_date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindExpiringBefore finds unexhausted batches expiring before the cutoff
func (r *GormStockEntryRepository) FindExpiringBefore(ctx context.Context, ownerID uuid.UUID, cutoff time.Time, filter shared.Filter) ([]inventory.StockEntry, error) {
	var entries []inventory.StockEntry
	query := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("owner_id = ? AND quantity > 0 AND expiry_date < ?", ownerID, cutoff)
	query = applyPagination(query, filter, "expiry_date ASC")

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates a batch
func (r *GormStockEntryRepository) Save(ctx context.Context, entry *inventory.StockEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// DeductQuantity decrements a batch's quantity with a guard so it never
// goes negative
func (r *GormStockEntryRepository) DeductQuantity(ctx context.Context, ownerID, id uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("owner_id = ? AND id = ? AND quantity >= ?", ownerID, id, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyQuantityFailure(ctx, ownerID, id)
	}
	return nil
}

// AddQuantity increments a batch's quantity
func (r *GormStockEntryRepository) AddQuantity(ctx context.Context, ownerID, id uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a batch for an owner
func (r *GormStockEntryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&inventory.StockEntry{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts batches for an owner matching the filter
func (r *GormStockEntryRepository) Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("owner_id = ?", ownerID)
	query = r.applySearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStockEntryRepository) classifyQuantityFailure(ctx context.Context, ownerID, id uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockEntry{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return shared.ErrInsufficientBatchStock
}

func (r *GormStockEntryRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("barcode ILIKE ? OR invoice_no ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

var _ inventory.StockEntryRepository = (*GormStockEntryRepository)(nil)
