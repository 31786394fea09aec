package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/domain/dto"
	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/service"
)

// CompositionHandler serves product-material associations, both on their own
// resource and on the legacy routes nested under a product.
type CompositionHandler struct {
	compositions service.CompositionService
}

// NewCompositionHandler creates a new CompositionHandler instance.
func NewCompositionHandler(compositions service.CompositionService) *CompositionHandler {
	return &CompositionHandler{compositions: compositions}
}

// List handles GET /api/product-materials requests.
//
// @Summary      List product-material associations
// @Description  Returns every association as sent by the manufacturing service.
// @Tags         Compositions
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]object} "Associations"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Failure      503 {object} dto.ErrorResponse "Manufacturing service unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/product-materials [get]
func (h *CompositionHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	records, err := h.compositions.List(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(nonNil(records))
}

// Get handles GET /api/product-materials/{id} requests.
//
// @Summary      Get product-material association
// @Tags         Compositions
// @Produce      json
// @Param        id path string true "Association id"
// @Success      200 {object} dto.SuccessResponse{data=object} "Association"
// @Failure      404 {object} dto.ErrorResponse "Association not found"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/product-materials/{id} [get]
func (h *CompositionHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	record, err := h.compositions.Get(c.Request.Context(), model.ID(c.Param("id")))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(record)
}

// Create handles POST /api/product-materials requests. The body may use any of
// the accepted field spellings; it is sent upstream in canonical form.
//
// @Summary      Create product-material association
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body object true "Association, e.g. {\"productId\":1,\"rawMaterialId\":3,\"quantity\":\"2,5\"}"
// @Success      201 {object} dto.SuccessResponse{data=object} "Created association"
// @Success      204 "Created, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/product-materials [post]
func (h *CompositionHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	payload, err := bindRecord(c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}

	h.created(builder, func() (model.Record, error) {
		return h.compositions.Create(c.Request.Context(), payload)
	})
}

// Update handles PUT /api/product-materials/{id} requests.
//
// @Summary      Update product-material association
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        id path string true "Association id"
// @Param        request body object false "Association fields"
// @Success      200 {object} dto.SuccessResponse{data=object} "Updated association"
// @Success      204 "Updated, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Association not found"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/product-materials/{id} [put]
func (h *CompositionHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	payload, err := bindRecord(c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}

	h.updated(builder, func() (model.Record, error) {
		return h.compositions.Update(c.Request.Context(), model.ID(c.Param("id")), payload)
	})
}

// Delete handles DELETE /api/product-materials/{id} requests.
//
// @Summary      Delete product-material association
// @Tags         Compositions
// @Param        id path string true "Association id"
// @Success      204 "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Association id is required"
// @Failure      404 {object} dto.ErrorResponse "Association not found"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/product-materials/{id} [delete]
func (h *CompositionHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.compositions.Delete(c.Request.Context(), model.ID(c.Param("id"))); err != nil {
		builder.Fail(err)
		return
	}
	builder.NoContent()
}

// ListByProduct handles GET /api/products/{id}/materials requests.
//
// @Summary      Product composition
// @Description  Returns the raw materials of one product with their code and name taken from the raw material catalogue.
// @Tags         Compositions
// @Produce      json
// @Param        id path string true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=[]object} "Associations of the product"
// @Failure      400 {object} dto.ErrorResponse "Invalid product id"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Failure      503 {object} dto.ErrorResponse "Manufacturing service unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products/{id}/materials [get]
func (h *CompositionHandler) ListByProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	records, err := h.compositions.ListByProduct(c.Request.Context(), model.ID(c.Param("id")))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(nonNil(records))
}

// CreateForProduct handles POST /api/products/{id}/materials requests.
//
// @Summary      Add raw material to product
// @Description  Legacy form: the product id comes from the path, the rest from the body.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Param        request body object true "Association, e.g. {\"rawMaterialId\":3,\"requiredQuantity\":2.5}"
// @Success      201 {object} dto.SuccessResponse{data=object} "Created association"
// @Success      204 "Created, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products/{id}/materials [post]
func (h *CompositionHandler) CreateForProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	payload, err := bindRecord(c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}
	if payload == nil {
		payload = model.Record{}
	}

	h.created(builder, func() (model.Record, error) {
		return h.compositions.CreateLegacy(c.Request.Context(), model.ID(c.Param("id")), payload)
	})
}

// CreateMaterial handles POST /api/products/{id}/materials/{materialId} requests.
//
// @Summary      Add raw material to product by id
// @Description  Legacy positional form: product and raw material come from the path, the required quantity from the optional body.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Param        materialId path string true "Raw material id"
// @Param        request body dto.MaterialQuantityRequest false "Required quantity"
// @Success      201 {object} dto.SuccessResponse{data=object} "Created association"
// @Success      204 "Created, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products/{id}/materials/{materialId} [post]
func (h *CompositionHandler) CreateMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildOptionalRequest[dto.MaterialQuantityRequest](c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}

	h.created(builder, func() (model.Record, error) {
		return h.compositions.CreateLegacy(c.Request.Context(),
			model.ID(c.Param("id")), model.ID(c.Param("materialId")), req.Value())
	})
}

// UpdateForProduct handles PUT /api/products/{id}/materials/{associationId} requests.
//
// @Summary      Update raw material of product
// @Description  Legacy form: the leading product id is ignored, the association is addressed by associationId.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Param        associationId path string true "Association id"
// @Param        request body object false "Association fields"
// @Success      200 {object} dto.SuccessResponse{data=object} "Updated association"
// @Success      204 "Updated, the manufacturing service returned no body"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products/{id}/materials/{associationId} [put]
func (h *CompositionHandler) UpdateForProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	payload, err := bindRecord(c)
	if err != nil {
		builder.InvalidBody(err)
		return
	}
	// (productId, associationId) alone would be read as (associationId, payload).
	if payload == nil {
		payload = model.Record{}
	}

	h.updated(builder, func() (model.Record, error) {
		return h.compositions.UpdateLegacy(c.Request.Context(),
			model.ID(c.Param("id")), model.ID(c.Param("associationId")), payload)
	})
}

// DeleteForProduct handles DELETE /api/products/{id}/materials/{associationId} requests.
//
// @Summary      Remove raw material from product
// @Tags         Compositions
// @Param        id path string true "Product id"
// @Param        associationId path string true "Association id"
// @Success      204 "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Association id is required"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/products/{id}/materials/{associationId} [delete]
func (h *CompositionHandler) DeleteForProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	err := h.compositions.DeleteLegacy(c.Request.Context(),
		model.ID(c.Param("id")), model.ID(c.Param("associationId")))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.NoContent()
}

func (h *CompositionHandler) created(builder *ResponseBuilder, create func() (model.Record, error)) {
	record, err := create()
	if err != nil {
		builder.Fail(err)
		return
	}
	if record == nil {
		builder.NoContent()
		return
	}
	builder.SuccessCreated(record)
}

func (h *CompositionHandler) updated(builder *ResponseBuilder, update func() (model.Record, error)) {
	record, err := update()
	if err != nil {
		builder.Fail(err)
		return
	}
	if record == nil {
		builder.NoContent()
		return
	}
	builder.SuccessOK(record)
}

func nonNil(records []model.Record) []model.Record {
	if records == nil {
		return []model.Record{}
	}
	return records
}
