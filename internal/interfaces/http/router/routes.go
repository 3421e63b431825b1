package router

import (
	"github.com/gin-gonic/gin"

	"github.com/openpharm/backend/internal/interfaces/http/handler"
)

// AuthRoutes mounts authentication endpoints under /auth
type AuthRoutes struct {
	handler *handler.AuthHandler
}

func NewAuthRoutes(h *handler.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: h}
}

func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/createuser", r.handler.CreateUser)
	auth.POST("/login", r.handler.Login)
	auth.POST("/getuser", r.handler.GetUser)
	auth.POST("/logout", r.handler.Logout)
	auth.POST("/refresh", r.handler.Refresh)
}

// MedicineRoutes mounts catalog endpoints under /medicine
type MedicineRoutes struct {
	handler *handler.MedicineHandler
}

func NewMedicineRoutes(h *handler.MedicineHandler) *MedicineRoutes {
	return &MedicineRoutes{handler: h}
}

func (r *MedicineRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	medicine := rg.Group("/medicine")
	medicine.POST("/add", r.handler.Add)
	medicine.GET("/all", r.handler.List)
	medicine.GET("/low-stock", r.handler.ListLowStock)
	medicine.GET("/barcode/:code", r.handler.GetByBarcode)
	medicine.PUT("/update/:id", r.handler.Update)
	medicine.DELETE("/delete/:id", r.handler.Delete)
}

// StockEntryRoutes mounts batch endpoints under /stock-entry
type StockEntryRoutes struct {
	handler *handler.StockEntryHandler
}

func NewStockEntryRoutes(h *handler.StockEntryHandler) *StockEntryRoutes {
	return &StockEntryRoutes{handler: h}
}

func (r *StockEntryRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	stock := rg.Group("/stock-entry")
	stock.POST("/add", r.handler.Add)
	stock.GET("/all", r.handler.List)
	stock.GET("/expiring", r.handler.ListExpiring)
	stock.PUT("/update/:id", r.handler.Update)
	stock.DELETE("/delete/:id", r.handler.Delete)
}

// SupplierRoutes mounts supplier endpoints under /suppliers
type SupplierRoutes struct {
	handler *handler.SupplierHandler
}

func NewSupplierRoutes(h *handler.SupplierHandler) *SupplierRoutes {
	return &SupplierRoutes{handler: h}
}

func (r *SupplierRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	suppliers.POST("/add", r.handler.Add)
	suppliers.GET("/all", r.handler.List)
	suppliers.GET("/:id", r.handler.GetByID)
	suppliers.PUT("/update/:id", r.handler.Update)
	suppliers.DELETE("/delete/:id", r.handler.Delete)
}

// SaleRoutes mounts point-of-sale endpoints under /sale
type SaleRoutes struct {
	handler *handler.SaleHandler
}

func NewSaleRoutes(h *handler.SaleHandler) *SaleRoutes {
	return &SaleRoutes{handler: h}
}

func (r *SaleRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	sale := rg.Group("/sale")
	sale.POST("/sell", r.handler.Sell)
	sale.POST("/quick-sale", r.handler.QuickSale)
	sale.GET("/all", r.handler.List)
	sale.GET("/:id", r.handler.GetByID)
	sale.PUT("/:id", r.handler.Update)
	sale.DELETE("/:id", r.handler.Delete)
	// Aliases matching the verb-prefixed style of the other groups.
	sale.PUT("/update/:id", r.handler.Update)
	sale.DELETE("/delete/:id", r.handler.Delete)
}

// ReturnRoutes mounts return endpoints under /return
type ReturnRoutes struct {
	handler *handler.ReturnHandler
}

func NewReturnRoutes(h *handler.ReturnHandler) *ReturnRoutes {
	return &ReturnRoutes{handler: h}
}

func (r *ReturnRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	ret := rg.Group("/return")
	ret.POST("/add", r.handler.Add)
	ret.GET("/all", r.handler.List)
	ret.GET("/:id", r.handler.GetByID)
	ret.PUT("/update/:id", r.handler.Update)
	ret.DELETE("/delete/:id", r.handler.Delete)
}
