package trade

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openpharm/backend/internal/domain/catalog"
	"github.com/openpharm/backend/internal/domain/inventory"
	"github.com/openpharm/backend/internal/domain/shared"
	"github.com/openpharm/backend/internal/domain/trade"
)

// ReturnService records medicine returns and applies their stock
// movement. A customer return puts quantity back into the batch and the
// medicine's aggregate counter; a supplier return takes it out of both.
type ReturnService struct {
	returnRepo     trade.MedicineReturnRepository
	stockEntryRepo inventory.StockEntryRepository
	medicineRepo   catalog.MedicineRepository
	logger         *zap.Logger
}

// NewReturnService creates a new ReturnService
func NewReturnService(
	returnRepo trade.MedicineReturnRepository,
	stockEntryRepo inventory.StockEntryRepository,
	medicineRepo catalog.MedicineRepository,
	logger *zap.Logger,
) *ReturnService {
	return &ReturnService{
		returnRepo:     returnRepo,
		stockEntryRepo: stockEntryRepo,
		medicineRepo:   medicineRepo,
		logger:         logger,
	}
}

// Create records a return against a batch and moves stock accordingly
func (s *ReturnService) Create(ctx context.Context, ownerID uuid.UUID, req CreateReturnRequest) (*ReturnResponse, error) {
	entry, err := s.stockEntryRepo.FindByID(ctx, ownerID, req.StockEntryID)
	if err != nil {
		return nil, err
	}

	ret, err := trade.NewMedicineReturn(
		ownerID, entry.ID, entry.MedicineID,
		req.Quantity, req.Reason,
		trade.ReturnType(req.ReturnType),
	)
	if err != nil {
		return nil, err
	}

	if ret.IsCustomerReturn() {
		if err := s.stockEntryRepo.AddQuantity(ctx, ownerID, entry.ID, req.Quantity); err != nil {
			return nil, err
		}
		if err := s.medicineRepo.AddStock(ctx, ownerID, entry.MedicineID, req.Quantity); err != nil {
			return nil, err
		}
	} else {
		if err := s.stockEntryRepo.DeductQuantity(ctx, ownerID, entry.ID, req.Quantity); err != nil {
			return nil, err
		}
		if err := s.medicineRepo.DeductStock(ctx, ownerID, entry.MedicineID, req.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.returnRepo.Save(ctx, ret); err != nil {
		return nil, err
	}

	return ToReturnResponse(ret), nil
}

// GetByID returns one return record
func (s *ReturnService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ReturnResponse, error) {
	ret, err := s.returnRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToReturnResponse(ret), nil
}

// List returns all return records for the owner
func (s *ReturnService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*ReturnResponse, int64, error) {
	returns, err := s.returnRepo.FindAll(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.returnRepo.Count(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToReturnResponses(returns), total, nil
}

// Update changes a return's reason or type. The quantity and batch are
// fixed; the stock movement already happened at creation.
func (s *ReturnService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateReturnRequest) (*ReturnResponse, error) {
	ret, err := s.returnRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	reason := ret.Reason
	returnType := ret.ReturnType
	if req.Reason != nil {
		reason = *req.Reason
	}
	if req.ReturnType != nil {
		returnType = trade.ReturnType(*req.ReturnType)
	}
	if err := ret.UpdateDetails(reason, returnType); err != nil {
		return nil, err
	}

	if err := s.returnRepo.Save(ctx, ret); err != nil {
		return nil, err
	}

	return ToReturnResponse(ret), nil
}

// Delete removes a return record without reversing its stock movement,
// mirroring sale deletion.
func (s *ReturnService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.returnRepo.Delete(ctx, ownerID, id)
}
