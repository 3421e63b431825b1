package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/catalog"
	"github.com/openpharm/backend/internal/domain/shared"
)

// MedicineService handles medicine-related business operations
type MedicineService struct {
	medicineRepo catalog.MedicineRepository
}

// NewMedicineService creates a new MedicineService
func NewMedicineService(medicineRepo catalog.MedicineRepository) *MedicineService {
	return &MedicineService{
		medicineRepo: medicineRepo,
	}
}

// Add creates a medicine, or restocks an existing one. When a medicine
// with the submitted barcode already exists for the owner, the submitted
// stock value is added to its counter and every other submitted field is
// discarded. This merge-by-barcode shortcut is the add semantics, not an
// accident: the storefront uses it to top up stock without a full stock
// entry.
func (s *MedicineService) Add(ctx context.Context, ownerID uuid.UUID, req AddMedicineRequest) (*MedicineResponse, error) {
	existing, err := s.medicineRepo.FindByBarcode(ctx, ownerID, req.Barcode)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if req.Stock > 0 {
			if err := existing.AddStock(req.Stock); err != nil {
				return nil, err
			}
		} else {
			existing.Touch()
		}
		if err := s.medicineRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		return ToMedicineResponse(existing), nil
	}

	medicine, err := catalog.NewMedicine(ownerID, req.BrandName, req.Barcode, catalog.MedicineUnit(req.Unit))
	if err != nil {
		return nil, err
	}

	if err := medicine.Update(req.BrandName, req.GenericName, req.Strength, req.Manufacturer, req.Category); err != nil {
		return nil, err
	}
	if err := medicine.SetSalePrice(req.SalePrice); err != nil {
		return nil, err
	}
	if err := medicine.SetReorderLevel(req.ReorderLevel); err != nil {
		return nil, err
	}
	if req.Stock > 0 {
		if err := medicine.AddStock(req.Stock); err != nil {
			return nil, err
		}
	}

	if err := s.medicineRepo.Save(ctx, medicine); err != nil {
		return nil, err
	}

	return ToMedicineResponse(medicine), nil
}

// GetByID returns one medicine for the owner
func (s *MedicineService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*MedicineResponse, error) {
	medicine, err := s.medicineRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToMedicineResponse(medicine), nil
}

// GetByBarcode returns one medicine looked up by barcode
func (s *MedicineService) GetByBarcode(ctx context.Context, ownerID uuid.UUID, barcode string) (*MedicineResponse, error) {
	if barcode == "" {
		return nil, shared.NewDomainError("INVALID_BARCODE", "Barcode cannot be empty")
	}

	medicine, err := s.medicineRepo.FindByBarcode(ctx, ownerID, barcode)
	if err != nil {
		return nil, err
	}
	return ToMedicineResponse(medicine), nil
}

// List returns all medicines for the owner
func (s *MedicineService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*MedicineResponse, int64, error) {
	medicines, err := s.medicineRepo.FindAll(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.medicineRepo.Count(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToMedicineResponses(medicines), total, nil
}

// ListLowStock returns medicines at or below their reorder level
func (s *MedicineService) ListLowStock(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*MedicineResponse, error) {
	medicines, err := s.medicineRepo.FindLowStock(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	return ToMedicineResponses(medicines), nil
}

// Update updates a medicine's descriptive attributes and pricing
func (s *MedicineService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateMedicineRequest) (*MedicineResponse, error) {
	medicine, err := s.medicineRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	brandName := medicine.BrandName
	genericName := medicine.GenericName
	strength := medicine.Strength
	manufacturer := medicine.Manufacturer
	category := medicine.Category
	if req.BrandName != nil {
		brandName = *req.BrandName
	}
	if req.GenericName != nil {
		genericName = *req.GenericName
	}
	if req.Strength != nil {
		strength = *req.Strength
	}
	if req.Manufacturer != nil {
		manufacturer = *req.Manufacturer
	}
	if req.Category != nil {
		category = *req.Category
	}
	if err := medicine.Update(brandName, genericName, strength, manufacturer, category); err != nil {
		return nil, err
	}

	if req.Unit != nil {
		if err := medicine.SetUnit(catalog.MedicineUnit(*req.Unit)); err != nil {
			return nil, err
		}
	}
	if req.SalePrice != nil {
		if err := medicine.SetSalePrice(*req.SalePrice); err != nil {
			return nil, err
		}
	}
	if req.ReorderLevel != nil {
		if err := medicine.SetReorderLevel(*req.ReorderLevel); err != nil {
			return nil, err
		}
	}

	if err := s.medicineRepo.Save(ctx, medicine); err != nil {
		return nil, err
	}

	return ToMedicineResponse(medicine), nil
}

// Delete deletes a medicine. Its batches are left in place as orphaned
// history rows.
func (s *MedicineService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.medicineRepo.Delete(ctx, ownerID, id)
}
