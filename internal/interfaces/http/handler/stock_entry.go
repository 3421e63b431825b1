package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	inventoryapp "github.com/openpharm/backend/internal/application/inventory"
	"github.com/openpharm/backend/internal/interfaces/http/dto"
)

// StockEntryHandler handles batch and shipment endpoints
type StockEntryHandler struct {
	BaseHandler
	stockEntryService *inventoryapp.StockEntryService
	expiryWarningDays int
}

// NewStockEntryHandler creates a new StockEntryHandler. expiryWarningDays
// is the default window for the expiring-batch report.
func NewStockEntryHandler(stockEntryService *inventoryapp.StockEntryService, expiryWarningDays int) *StockEntryHandler {
	return &StockEntryHandler{
		stockEntryService: stockEntryService,
		expiryWarningDays: expiryWarningDays,
	}
}

// Add ingests a shipment of one or more batch lines
func (h *StockEntryHandler) Add(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.AddStockEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.stockEntryService.Add(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns the owner's batches
func (h *StockEntryHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entries, total, err := h.stockEntryService.List(c.Request.Context(), ownerID, buildFilter(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, req.Page, req.PageSize)
}

// ListExpiring returns batches expiring within the warning window. The
// window can be overridden with the days query parameter.
func (h *StockEntryHandler) ListExpiring(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days := h.expiryWarningDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.BadRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entries, err := h.stockEntryService.ListExpiring(c.Request.Context(), ownerID, days, buildFilter(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// Update corrects a batch's mutable fields
func (h *StockEntryHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock entry ID")
		return
	}

	var req inventoryapp.UpdateStockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entry, err := h.stockEntryService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete removes a batch
func (h *StockEntryHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock entry ID")
		return
	}

	if err := h.stockEntryService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Stock entry deleted"})
}
