package trade

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openpharm/backend/internal/domain/catalog"
	"github.com/openpharm/backend/internal/domain/identity"
	"github.com/openpharm/backend/internal/domain/inventory"
	"github.com/openpharm/backend/internal/domain/shared"
	"github.com/openpharm/backend/internal/domain/trade"
)

// SaleService fulfills sale requests: it validates each line, picks the
// batch to deduct from, moves both stock counters, and records the sale.
//
// Processing is strictly sequential and per-item commits are immediate:
// a later line of the same request observes the deductions of earlier
// lines, and a failure partway leaves earlier deductions in place with no
// sale recorded. There is no cross-item transaction and no rollback; the
// conditional counter updates only guarantee no counter goes negative
// under concurrent requests.
type SaleService struct {
	saleRepo       trade.SaleRepository
	medicineRepo   catalog.MedicineRepository
	stockEntryRepo inventory.StockEntryRepository
	userRepo       identity.UserRepository
	selector       *inventory.BatchSelector
	logger         *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo trade.SaleRepository,
	medicineRepo catalog.MedicineRepository,
	stockEntryRepo inventory.StockEntryRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *SaleService {
	return &SaleService{
		saleRepo:       saleRepo,
		medicineRepo:   medicineRepo,
		stockEntryRepo: stockEntryRepo,
		userRepo:       userRepo,
		selector:       inventory.NewBatchSelector(),
		logger:         logger,
	}
}

type fulfilledItem struct {
	medicine *catalog.Medicine
	batch    *inventory.StockEntry
	quantity int
}

// Sell fulfills a multi-item sale request
func (s *SaleService) Sell(ctx context.Context, ownerID uuid.UUID, req SellRequest) (*SaleResponse, error) {
	// the whole request is validated before any store access
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "A sale needs at least one item")
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Barcode) == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Each item needs a barcode")
		}
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Each item quantity must be a positive number")
		}
	}

	now := time.Now()
	fulfilled := make([]fulfilledItem, 0, len(req.Items))

	for _, item := range req.Items {
		f, err := s.fulfillItem(ctx, ownerID, item.Barcode, item.Quantity, now)
		if err != nil {
			if len(fulfilled) > 0 {
				// earlier lines already committed their deductions and
				// stay deducted; no sale is recorded for them
				s.logger.Warn("sale aborted after partial fulfillment",
					zap.String("owner_id", ownerID.String()),
					zap.Int("committed_items", len(fulfilled)),
					zap.String("failed_barcode", item.Barcode),
					zap.Error(err),
				)
			}
			return nil, err
		}
		fulfilled = append(fulfilled, f)
	}

	sale := trade.NewSale(ownerID, req.CustomerName)
	for _, f := range fulfilled {
		batchID := f.batch.ID
		if err := sale.AddItem(f.medicine.ID, &batchID, f.quantity, f.medicine.SalePrice); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	return s.resolveSale(ctx, ownerID, sale), nil
}

// QuickSale fulfills a single-item sale. A zero quantity means the
// counter default of one unit.
func (s *SaleService) QuickSale(ctx context.Context, ownerID uuid.UUID, req QuickSaleRequest) (*SaleResponse, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return s.Sell(ctx, ownerID, SellRequest{
		Items:        []SellItemRequest{{Barcode: req.Barcode, Quantity: quantity}},
		CustomerName: req.CustomerName,
	})
}

// fulfillItem validates and commits the stock movement for one line. The
// medicine's aggregate counter is checked first; batch selection can then
// still fail when no single batch covers the quantity, which is the
// intended divergence between the two counters.
func (s *SaleService) fulfillItem(ctx context.Context, ownerID uuid.UUID, barcode string, quantity int, now time.Time) (fulfilledItem, error) {
	medicine, err := s.medicineRepo.FindByBarcode(ctx, ownerID, barcode)
	if err != nil {
		return fulfilledItem{}, err
	}

	if !medicine.HasStock(quantity) {
		return fulfilledItem{}, shared.ErrInsufficientStock
	}

	batches, err := s.stockEntryRepo.FindAvailable(ctx, ownerID, medicine.ID, now)
	if err != nil {
		return fulfilledItem{}, err
	}

	batch, err := s.selector.SelectBatch(batches, quantity, now)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fulfilledItem{}, shared.ErrInsufficientBatchStock
		}
		return fulfilledItem{}, err
	}

	// batch first, then the aggregate counter; both are conditional so a
	// concurrent sale cannot drive either negative
	if err := s.stockEntryRepo.DeductQuantity(ctx, ownerID, batch.ID, quantity); err != nil {
		return fulfilledItem{}, err
	}
	if err := s.medicineRepo.DeductStock(ctx, ownerID, medicine.ID, quantity); err != nil {
		return fulfilledItem{}, err
	}

	batch.Quantity -= quantity
	medicine.Stock -= quantity

	return fulfilledItem{medicine: medicine, batch: batch, quantity: quantity}, nil
}

// GetByID returns one sale with display fields resolved
func (s *SaleService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.resolveSale(ctx, ownerID, sale), nil
}

// List returns all sales for the owner with display fields resolved
func (s *SaleService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]*SaleResponse, int64, error) {
	sales, err := s.saleRepo.FindAll(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.saleRepo.Count(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*SaleResponse, len(sales))
	for i := range sales {
		responses[i] = s.resolveSale(ctx, ownerID, &sales[i])
	}
	return responses, total, nil
}

// Update changes a sale's customer name, the only mutable field
func (s *SaleService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateSaleRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := sale.SetCustomerName(req.CustomerName); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	return s.resolveSale(ctx, ownerID, sale), nil
}

// Delete removes a sale outright. The stock it consumed is not restored;
// a correction goes through a customer return instead.
func (s *SaleService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.saleRepo.Delete(ctx, ownerID, id)
}

// resolveSale projects a sale into its response shape, resolving the
// medicine, batch, and seller references for display. References that no
// longer resolve (deleted medicine, deleted batch) are left nil so old
// sales stay readable.
func (s *SaleService) resolveSale(ctx context.Context, ownerID uuid.UUID, sale *trade.Sale) *SaleResponse {
	resp := &SaleResponse{
		ID:           sale.ID,
		Items:        make([]SaleItemResponse, 0, len(sale.Items)),
		GrandTotal:   sale.GrandTotal,
		CustomerName: sale.CustomerName,
		Date:         sale.Date,
		CreatedAt:    sale.CreatedAt,
		UpdatedAt:    sale.UpdatedAt,
	}

	if seller, err := s.userRepo.FindByID(ctx, sale.SoldByID); err == nil {
		resp.SoldBy = &SoldBySummary{ID: seller.ID, Name: seller.Name, Email: seller.Email}
	}

	medicines := make(map[uuid.UUID]*catalog.Medicine)
	for _, item := range sale.Items {
		itemResp := SaleItemResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		}

		medicine, ok := medicines[item.MedicineID]
		if !ok {
			if m, err := s.medicineRepo.FindByID(ctx, ownerID, item.MedicineID); err == nil {
				medicine = m
				medicines[item.MedicineID] = m
			}
		}
		if medicine != nil {
			itemResp.Medicine = &MedicineSummary{ID: medicine.ID, BrandName: medicine.BrandName, Barcode: medicine.Barcode}
		}

		if item.BatchID != nil {
			if batch, err := s.stockEntryRepo.FindByID(ctx, ownerID, *item.BatchID); err == nil {
				itemResp.Batch = &BatchSummary{ID: batch.ID, ExpiryDate: batch.ExpiryDate}
			}
		}

		resp.Items = append(resp.Items, itemResp)
	}

	return resp
}
