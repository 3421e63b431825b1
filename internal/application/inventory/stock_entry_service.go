package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openpharm/backend/internal/domain/catalog"
	"github.com/openpharm/backend/internal/domain/inventory"
	"github.com/openpharm/backend/internal/domain/partner"
	"github.com/openpharm/backend/internal/domain/shared"
)

// StockEntryService handles shipment ingestion and batch corrections
type StockEntryService struct {
	stockEntryRepo inventory.StockEntryRepository
	medicineRepo   catalog.MedicineRepository
	supplierRepo   partner.SupplierRepository
	logger         *zap.Logger
}

// NewStockEntryService creates a new StockEntryService
func NewStockEntryService(
	stockEntryRepo inventory.StockEntryRepository,
	medicineRepo catalog.MedicineRepository,
	supplierRepo partner.SupplierRepository,
	logger *zap.Logger,
) *StockEntryService {
	return &StockEntryService{
		stockEntryRepo: stockEntryRepo,
		medicineRepo:   medicineRepo,
		supplierRepo:   supplierRepo,
		logger:         logger,
	}
}

// Add ingests one shipment. Each batch line resolves its medicine by
// barcode; lines whose barcode matches nothing the owner has are skipped
// silently and the rest keep processing. Every accepted line creates a
// fresh batch row (never merged into an existing batch) and bumps the
// medicine's aggregate stock counter.
func (s *StockEntryService) Add(ctx context.Context, ownerID uuid.UUID, req AddStockEntriesRequest) (*AddStockEntriesResult, error) {
	if _, err := s.supplierRepo.FindByID(ctx, ownerID, req.SupplierID); err != nil {
		return nil, err
	}

	result := &AddStockEntriesResult{
		Created:         make([]*StockEntryResponse, 0, len(req.Batches)),
		SkippedBarcodes: make([]string, 0),
	}

	for _, line := range req.Batches {
		medicine, err := s.medicineRepo.FindByBarcode(ctx, ownerID, line.Barcode)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				s.logger.Warn("skipping stock entry line with unknown barcode",
					zap.String("barcode", line.Barcode),
					zap.String("owner_id", ownerID.String()),
				)
				result.SkippedBarcodes = append(result.SkippedBarcodes, line.Barcode)
				continue
			}
			return nil, err
		}

		entry, err := inventory.NewStockEntry(
			ownerID, medicine.ID, req.SupplierID,
			medicine.Barcode, req.InvoiceNo,
			req.InvoiceDate,
			line.Quantity,
			line.CostPrice, line.MRP,
			line.ExpiryDate,
		)
		if err != nil {
			return nil, err
		}

		if err := s.stockEntryRepo.Save(ctx, entry); err != nil {
			return nil, err
		}
		if err := s.medicineRepo.AddStock(ctx, ownerID, medicine.ID, line.Quantity); err != nil {
			return nil, err
		}

		result.Created = append(result.Created, ToStockEntryResponse(entry))
	}

	return result, nil
}

// GetByID returns one batch for the owner
func (s *StockEntryService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*StockEntryResponse, error) {
	entry, err := s.stockEntryRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToStockEntryResponse(entry), nil
}

// List returns all batches for the owner
func (s *StockEntryService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*StockEntryResponse, int64, error) {
	entries, err := s.stockEntryRepo.FindAll(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.stockEntryRepo.Count(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockEntryResponses(entries), total, nil
}

// ListExpiring returns unexhausted batches that expire within the given
// number of days
func (s *StockEntryService) ListExpiring(ctx context.Context, ownerID uuid.UUID, withinDays int, filter shared.Filter) ([]*StockEntryResponse, error) {
	cutoff := time.Now().AddDate(0, 0, withinDays)
	entries, err := s.stockEntryRepo.FindExpiringBefore(ctx, ownerID, cutoff, filter)
	if err != nil {
		return nil, err
	}
	return ToStockEntryResponses(entries), nil
}

// Update corrects a batch's mutable fields. Quantity corrections do not
// adjust the medicine's aggregate counter retroactively.
func (s *StockEntryService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateStockEntryRequest) (*StockEntryResponse, error) {
	entry, err := s.stockEntryRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.InvoiceNo != nil || req.InvoiceDate != nil {
		invoiceNo := entry.InvoiceNo
		invoiceDate := entry.InvoiceDate
		if req.InvoiceNo != nil {
			invoiceNo = *req.InvoiceNo
		}
		if req.InvoiceDate != nil {
			invoiceDate = *req.InvoiceDate
		}
		entry.UpdateInvoice(invoiceNo, invoiceDate)
	}

	if req.Quantity != nil {
		if err := entry.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}

	if req.CostPrice != nil || req.MRP != nil {
		costPrice := entry.CostPrice
		mrp := entry.MRP
		if req.CostPrice != nil {
			costPrice = *req.CostPrice
		}
		if req.MRP != nil {
			mrp = *req.MRP
		}
		if err := entry.UpdatePricing(costPrice, mrp); err != nil {
			return nil, err
		}
	}

	if req.ExpiryDate != nil {
		if err := entry.SetExpiryDate(*req.ExpiryDate); err != nil {
			return nil, err
		}
	}

	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(ctx, ownerID, *req.SupplierID); err != nil {
			return nil, err
		}
		if err := entry.SetSupplier(*req.SupplierID); err != nil {
			return nil, err
		}
	}

	if err := s.stockEntryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	return ToStockEntryResponse(entry), nil
}

// Delete removes a batch. The medicine's aggregate counter is left
// untouched, matching how sales and manual corrections treat it.
func (s *StockEntryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.stockEntryRepo.Delete(ctx, ownerID, id)
}
