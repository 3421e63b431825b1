package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/openpharm/backend/internal/application/catalog"
	"github.com/openpharm/backend/internal/interfaces/http/dto"
)

// MedicineHandler handles medicine catalog endpoints
type MedicineHandler struct {
	BaseHandler
	medicineService *catalogapp.MedicineService
}

// NewMedicineHandler creates a new MedicineHandler
func NewMedicineHandler(medicineService *catalogapp.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// Add creates a medicine, or restocks the existing one when the barcode
// is already registered for this owner
func (h *MedicineHandler) Add(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalogapp.AddMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	medicine, err := h.medicineService.Add(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, medicine)
}

// List returns the owner's medicines
func (h *MedicineHandler) List(c *gin.Context) {
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

	medicines, total, err := h.medicineService.List(c.Request.Context(), ownerID, buildFilter(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, medicines, total, req.Page, req.PageSize)
}

// ListLowStock returns medicines at or below their reorder level
func (h *MedicineHandler) ListLowStock(c *gin.Context) {
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

	medicines, err := h.medicineService.ListLowStock(c.Request.Context(), ownerID, buildFilter(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, medicines)
}

// GetByBarcode looks a medicine up by its barcode
func (h *MedicineHandler) GetByBarcode(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	medicine, err := h.medicineService.GetByBarcode(c.Request.Context(), ownerID, c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, medicine)
}

// Update updates a medicine's descriptive attributes and pricing
func (h *MedicineHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req catalogapp.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	medicine, err := h.medicineService.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, medicine)
}

// Delete removes a medicine
func (h *MedicineHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid medicine ID")
		return
	}

	if err := h.medicineService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Medicine deleted"})
}
