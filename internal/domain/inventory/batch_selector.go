package inventory

import (
	"sort"
	"time"

	"github.com/openpharm/backend/internal/domain/shared"
)

// BatchSelector chooses which batch a sale deducts from.
//
// Selection is FEFO (first-expiry-first-out) with a whole-request
// sufficiency rule: among the batches that still hold stock and have not
// expired, the earliest-expiring batch whose remaining quantity covers the
// entire requested amount wins. A request is never split across batches,
// so selection can fail even when the quantities of several batches would
// add up: that divergence from the medicine's aggregate counter is
// expected and callers surface it as insufficient batch stock.
type BatchSelector struct{}

// NewBatchSelector creates a new batch selector
func NewBatchSelector() *BatchSelector {
	return &BatchSelector{}
}

// SelectBatch returns the earliest-expiring eligible batch that can cover
// requestedQuantity on its own. Returns shared.ErrNotFound when no batch
// qualifies.
func (s *BatchSelector) SelectBatch(batches []*StockEntry, requestedQuantity int, now time.Time) (*StockEntry, error) {
	if requestedQuantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested quantity must be positive")
	}

	eligible := s.filterEligible(batches, now)
	if len(eligible) == 0 {
		return nil, shared.ErrNotFound
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].ExpiryDate.Equal(eligible[j].ExpiryDate) {
			return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
		}
		return eligible[i].ExpiryDate.Before(eligible[j].ExpiryDate)
	})

	for _, batch := range eligible {
		if batch.HasStock(requestedQuantity) {
			return batch, nil
		}
	}

	return nil, shared.ErrNotFound
}

// filterEligible keeps batches with remaining stock that have not expired.
// An expired batch is excluded even when it still holds quantity.
func (s *BatchSelector) filterEligible(batches []*StockEntry, now time.Time) []*StockEntry {
	eligible := make([]*StockEntry, 0, len(batches))
	for _, batch := range batches {
		if batch.Quantity <= 0 {
			continue
		}
		if batch.ExpiryDate.Before(now) {
			continue
		}
		eligible = append(eligible, batch)
	}
	return eligible
}
