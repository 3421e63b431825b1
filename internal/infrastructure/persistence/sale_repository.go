package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openpharm/backend/internal/domain/shared"
	"github.com/openpharm/backend/internal/domain/trade"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its line items for an owner
func (r *GormSaleRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds all sales with line items for an owner
func (r *GormSaleRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]trade.Sale, error) {
	var sales []trade.Sale
	query := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Preload("Items").
		Where("owner_id = ?", ownerID)
	query = r.applySearch(query, filter)
	query = applyPagination(query, filter, "date DESC")

	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save creates or updates a sale with its line items
func (r *GormSaleRepository) Save(ctx context.Context, sale *trade.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// Delete deletes a sale and its line items for an owner. Items go first
// so the delete cannot orphan them when foreign keys are not enforced.
func (r *GormSaleRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&trade.Sale{}, "owner_id = ? AND id = ?", ownerID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Delete(&trade.SaleItem{}, "sale_id = ?", id).Error
	})
}

// Count counts sales for an owner matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Where("owner_id = ?", ownerID)
	query = r.applySearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSaleRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("customer_name ILIKE ?", searchPattern)
	}
	return query
}

var _ trade.SaleRepository = (*GormSaleRepository)(nil)
