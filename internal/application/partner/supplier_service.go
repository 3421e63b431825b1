package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/partner"
	"github.com/openpharm/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create creates a new supplier for the owner
func (s *SupplierService) Create(ctx context.Context, ownerID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	existing, err := s.supplierRepo.FindByName(ctx, ownerID, req.Name)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this name already exists")
	}

	supplier, err := partner.NewSupplier(ownerID, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Contact != "" {
		if err := supplier.SetContact(req.Email, req.Contact); err != nil {
			return nil, err
		}
	}
	if req.Address != "" {
		supplier.SetAddress(req.Address)
	}
	if req.Status != "" {
		if err := supplier.SetStatus(partner.SupplierStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return ToSupplierResponse(supplier), nil
}

// GetByID returns one supplier for the owner
func (s *SupplierService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// List returns all suppliers for the owner
func (s *SupplierService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*SupplierResponse, int64, error) {
	suppliers, err := s.supplierRepo.FindAll(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.Count(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update updates a supplier's fields
func (s *SupplierService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := supplier.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil || req.Contact != nil {
		email := supplier.Email
		contact := supplier.Contact
		if req.Email != nil {
			email = *req.Email
		}
		if req.Contact != nil {
			contact = *req.Contact
		}
		if err := supplier.SetContact(email, contact); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		supplier.SetAddress(*req.Address)
	}
	if req.Status != nil {
		if err := supplier.SetStatus(partner.SupplierStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return ToSupplierResponse(supplier), nil
}

// Delete deletes a supplier for the owner
func (s *SupplierService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, ownerID, id)
}

func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
