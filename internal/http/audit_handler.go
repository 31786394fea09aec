package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/circuitbreaker"
	"github.com/guttosm/production-gateway/internal/domain/dto"
	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/i18n"
	"github.com/guttosm/production-gateway/internal/service"
)

// AuditHandler exposes the audit trail of gateway mutations.
type AuditHandler struct {
	audit service.AuditService
}

// NewAuditHandler creates a new AuditHandler instance.
func NewAuditHandler(audit service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Query handles GET /api/audit requests.
//
// @Summary      Query audit trail
// @Description  Lists recorded mutations and plan refreshes, newest first. Available only when MongoDB is enabled.
// @Tags         Audit
// @Produce      json
// @Param        action query string false "Action, e.g. create_composition"
// @Param        request_id query string false "Request id"
// @Param        subject query string false "Subject id"
// @Param        start_time query string false "RFC3339 lower bound"
// @Param        end_time query string false "RFC3339 upper bound"
// @Param        limit query int false "Maximum entries (default and max 500)"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.AuditEntry} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      404 {object} dto.ErrorResponse "Audit trail is disabled"
// @Failure      503 {object} dto.ErrorResponse "Audit store unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/audit [get]
func (h *AuditHandler) Query(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AuditQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	entries, err := h.audit.Query(c.Request.Context(), req.ToQuery())
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAuditDisabled):
		builder.Error(http.StatusNotFound, i18n.ErrKeyAuditDisabled, err)
		return
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if entries == nil {
		entries = []model.AuditEntry{}
	}
	builder.SuccessOK(entries)
}
