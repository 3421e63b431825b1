package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openpharm/backend/internal/domain/shared"
	"github.com/openpharm/backend/internal/domain/trade"
)

// GormMedicineReturnRepository implements MedicineReturnRepository using GORM
type GormMedicineReturnRepository struct {
	db *gorm.DB
}

// NewGormMedicineReturnRepository creates a new GormMedicineReturnRepository
func NewGormMedicineReturnRepository(db *gorm.DB) *GormMedicineReturnRepository {
	return &GormMedicineReturnRepository{db: db}
}

// FindByID finds a return by ID for an owner
func (r *GormMedicineReturnRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*trade.MedicineReturn, error) {
	var ret trade.MedicineReturn
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&ret).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// FindAll finds all returns for an owner matching the filter
func (r *GormMedicineReturnRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]trade.MedicineReturn, error) {
	var returns []trade.MedicineReturn
	query := r.db.WithContext(ctx).
		Model(&trade.MedicineReturn{}).
		Where("owner_id = ?", ownerID)
	if returnType, ok := filter.Filters["return_type"]; ok {
		query = query.Where("return_type = ?", returnType)
	}
	query = applyPagination(query, filter, "date DESC")

	if err := query.Find(&returns).Error; err != nil {
		return nil, err
	}
	return returns, nil
}

// Save creates or updates a return
func (r *GormMedicineReturnRepository) Save(ctx context.Context, ret *trade.MedicineReturn) error {
	return r.db.WithContext(ctx).Save(ret).Error
}

// Delete deletes a return for an owner
func (r *GormMedicineReturnRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&trade.MedicineReturn{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts returns for an owner matching the filter
func (r *GormMedicineReturnRepository) Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&trade.MedicineReturn{}).
		Where("owner_id = ?", ownerID)
	if returnType, ok := filter.Filters["return_type"]; ok {
		query = query.Where("return_type = ?", returnType)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ trade.MedicineReturnRepository = (*GormMedicineReturnRepository)(nil)
