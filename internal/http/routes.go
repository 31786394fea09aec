package http

import (
	"github.com/gin-gonic/gin"
)

// registerAPIRoutes registers the business routes of every configured handler.
func registerAPIRoutes(api *gin.RouterGroup, h Handlers) {
	if h.Catalog != nil {
		registerCatalogRoutes(api, h.Catalog)
	}
	if h.Compositions != nil {
		registerCompositionRoutes(api, h.Compositions)
	}
	if h.Production != nil {
		registerProductionRoutes(api, h.Production)
	}
	if h.Audit != nil {
		api.GET("/audit", h.Audit.Query)
	}
}

func registerCatalogRoutes(api *gin.RouterGroup, h *CatalogHandler) {
	products := api.Group("/products")
	products.GET("", h.ListProducts)
	products.POST("", h.CreateProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)

	materials := api.Group("/raw-materials")
	materials.GET("", h.ListRawMaterials)
	materials.POST("", h.CreateRawMaterial)
	materials.PUT("/:id", h.UpdateRawMaterial)
	materials.DELETE("/:id", h.DeleteRawMaterial)
}

// registerCompositionRoutes registers the association resource and the
// legacy routes nested under a product.
func registerCompositionRoutes(api *gin.RouterGroup, h *CompositionHandler) {
	associations := api.Group("/product-materials")
	associations.GET("", h.List)
	associations.POST("", h.Create)
	associations.GET("/:id", h.Get)
	associations.PUT("/:id", h.Update)
	associations.DELETE("/:id", h.Delete)

	nested := api.Group("/products/:id/materials")
	nested.GET("", h.ListByProduct)
	nested.POST("", h.CreateForProduct)
	nested.POST("/:materialId", h.CreateMaterial)
	nested.PUT("/:associationId", h.UpdateForProduct)
	nested.DELETE("/:associationId", h.DeleteForProduct)
}

func registerProductionRoutes(api *gin.RouterGroup, h *ProductionHandler) {
	production := api.Group("/production")
	production.GET("/suggestions", h.Suggestions)
	production.GET("/plan", h.Plan)
	production.POST("/plan/refresh", h.Refresh)
	production.GET("/plan/export", h.Export)
}
