package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openpharm/backend/internal/domain/catalog"
	"github.com/openpharm/backend/internal/domain/shared"
)

// GormMedicineRepository implements MedicineRepository using GORM
type GormMedicineRepository struct {
	db *gorm.DB
}

// NewGormMedicineRepository creates a new GormMedicineRepository
func NewGormMedicineRepository(db *gorm.DB) *GormMedicineRepository {
	return &GormMedicineRepository{db: db}
}

// FindByID finds a medicine by ID for an owner
func (r *GormMedicineRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*catalog.Medicine, error) {
	var medicine catalog.Medicine
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&medicine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &medicine, nil
}

// FindByBarcode finds a medicine by barcode for an owner
func (r *GormMedicineRepository) FindByBarcode(ctx context.Context, ownerID uuid.UUID, barcode string) (*catalog.Medicine, error) {
	var medicine catalog.Medicine
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND barcode = ?", ownerID, barcode).
		First(&medicine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &medicine, nil
}

// FindAll finds all medicines for an owner matching the filter
func (r *GormMedicineRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Medicine, error) {
	var medicines []catalog.Medicine
	query := r.db.WithContext(ctx).
		Model(&catalog.Medicine{}).
		Where("owner_id = ?", ownerID)
	query = r.applySearch(query, filter)
	query = applyPagination(query, filter, "brand_name ASC")

	if err := query.Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// FindLowStock finds medicines whose stock has fallen to their reorder level
func (r *GormMedicineRepository) FindLowStock(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Medicine, error) {
	var medicines []catalog.Medicine
	query := r.db.WithContext(ctx).
		Model(&catalog.Medicine{}).
		Where("owner_id = ? AND reorder_level > 0 AND stock <= reorder_level", ownerID)
	query = applyPagination(query, filter, "stock ASC")

	if err := query.Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// Save creates or updates a medicine
func (r *GormMedicineRepository) Save(ctx context.Context, medicine *catalog.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

// DeductStock decrements the aggregate stock counter with a guard so the
// counter never goes negative. Concurrent deductions race on the guard
// instead of on a read-modify-write cycle.
func (r *GormMedicineRepository) DeductStock(ctx context.Context, ownerID, id uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&catalog.Medicine{}).
		Where("owner_id = ? AND id = ? AND stock >= ?", ownerID, id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyStockFailure(ctx, ownerID, id, shared.ErrInsufficientStock)
	}
	return nil
}

// AddStock increments the aggregate stock counter
func (r *GormMedicineRepository) AddStock(ctx context.Context, ownerID, id uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&catalog.Medicine{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a medicine for an owner
func (r *GormMedicineRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&catalog.Medicine{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts medicines for an owner matching the filter
func (r *GormMedicineRepository) Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&catalog.Medicine{}).
		Where("owner_id = ?", ownerID)
	query = r.applySearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// classifyStockFailure distinguishes a failed guard from a missing row so
// callers can tell insufficiency apart from a bad ID.
func (r *GormMedicineRepository) classifyStockFailure(ctx context.Context, ownerID, id uuid.UUID, insufficientErr error) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Medicine{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return insufficientErr
}

func (r *GormMedicineRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("brand_name ILIKE ? OR generic_name ILIKE ? OR barcode ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	return query
}

var _ catalog.MedicineRepository = (*GormMedicineRepository)(nil)
