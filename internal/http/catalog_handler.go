package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/service"
)

// CatalogHandler serves products and raw materials.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns every product of the manufacturing service.
// @Tags         Products
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Product} "Products"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Failure      503 {object} dto.ErrorResponse "Manufacturing service unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	builder.SuccessOK(products)
}

// CreateProduct handles POST /api/products requests.
//
// @Summary      Create product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body model.Product true "Product"
// @Success      201 {object} dto.SuccessResponse{data=model.Product} "Created product"
// @Success      204 "Created, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[model.Product](c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}

	created, err := h.catalog.CreateProduct(c.Request.Context(), *req)
	if err != nil {
		builder.Fail(err)
		return
	}
	if created == nil {
		builder.NoContent()
		return
	}
	builder.SuccessCreated(created)
}

// UpdateProduct handles PUT /api/products/{id} requests.
//
// @Summary      Update product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Param        request body model.Product true "Product"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Updated product"
// @Success      204 "Updated, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[model.Product](c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}

	updated, err := h.catalog.UpdateProduct(c.Request.Context(), model.ID(c.Param("id")), *req)
	if err != nil {
		builder.Fail(err)
		return
	}
	if updated == nil {
		builder.NoContent()
		return
	}
	builder.SuccessOK(updated)
}

// DeleteProduct handles DELETE /api/products/{id} requests.
//
// @Summary      Delete product
// @Tags         Products
// @Param        id path string true "Product id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.catalog.DeleteProduct(c.Request.Context(), model.ID(c.Param("id"))); err != nil {
		builder.Fail(err)
		return
	}
	builder.NoContent()
}

// ListRawMaterials handles GET /api/raw-materials requests.
//
// @Summary      List raw materials
// @Tags         Raw materials
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.RawMaterial} "Raw materials"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Failure      503 {object} dto.ErrorResponse "Manufacturing service unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/raw-materials [get]
func (h *CatalogHandler) ListRawMaterials(c *gin.Context) {
	builder := NewResponseBuilder(c)

	materials, err := h.catalog.ListRawMaterials(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	if materials == nil {
		materials = []model.RawMaterial{}
	}
	builder.SuccessOK(materials)
}

// CreateRawMaterial handles POST /api/raw-materials requests.
//
// @Summary      Create raw material
// @Tags         Raw materials
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body model.RawMaterial true "Raw material"
// @Success      201 {object} dto.SuccessResponse{data=model.RawMaterial} "Created raw material"
// @Success      204 "Created, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/raw-materials [post]
func (h *CatalogHandler) CreateRawMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[model.RawMaterial](c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}

	created, err := h.catalog.CreateRawMaterial(c.Request.Context(), *req)
	if err != nil {
		builder.Fail(err)
		return
	}
	if created == nil {
		builder.NoContent()
		return
	}
	builder.SuccessCreated(created)
}

// UpdateRawMaterial handles PUT /api/raw-materials/{id} requests.
//
// @Summary      Update raw material
// @Tags         Raw materials
// @Accept       json
// @Produce      json
// @Param        id path string true "Raw material id"
// @Param        request body model.RawMaterial true "Raw material"
// @Success      200 {object} dto.SuccessResponse{data=model.RawMaterial} "Updated raw material"
// @Success      204 "Updated, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Raw material not found"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/raw-materials/{id} [put]
func (h *CatalogHandler) UpdateRawMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[model.RawMaterial](c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}

	updated, err := h.catalog.UpdateRawMaterial(c.Request.Context(), model.ID(c.Param("id")), *req)
	if err != nil {
		builder.Fail(err)
		return
	}
	if updated == nil {
		builder.NoContent()
		return
	}
	builder.SuccessOK(updated)
}

// DeleteRawMaterial handles DELETE /api/raw-materials/{id} requests.
//
// @Summary      Delete raw material
// @Tags         Raw materials
// @Param        id path string true "Raw material id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Raw material not found"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/raw-materials/{id} [delete]
func (h *CatalogHandler) DeleteRawMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.catalog.DeleteRawMaterial(c.Request.Context(), model.ID(c.Param("id"))); err != nil {
		builder.Fail(err)
		return
	}
	builder.NoContent()
}
