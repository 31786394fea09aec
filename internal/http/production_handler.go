package http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/production-gateway/internal/domain/dto"
	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/export"
	"github.com/guttosm/production-gateway/internal/i18n"
	"github.com/guttosm/production-gateway/internal/metrics"
	"github.com/guttosm/production-gateway/internal/service"
)

// PlanViewer is the production plan view served by ProductionHandler.
type PlanViewer interface {
	Snapshot() service.PlanSnapshot
	ReadyPlan() (model.ProductionPlan, error)
	Refresh(ctx context.Context) service.PlanSnapshot
}

// ProductionHandler serves production suggestions and the plan view.
type ProductionHandler struct {
	production service.ProductionService
	view       PlanViewer
	now        func() time.Time
}

// NewProductionHandler creates a new ProductionHandler instance.
func NewProductionHandler(production service.ProductionService, view PlanViewer) *ProductionHandler {
	return &ProductionHandler{production: production, view: view, now: time.Now}
}

// Suggestions handles GET /api/production/suggestions requests.
//
// @Summary      Production suggestion
// @Description  Fetches the current suggestion from the manufacturing service, ranks it by descending unit value and totals it. Amounts are formatted with two decimals.
// @Tags         Production
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.PlanResponse} "Ranked production plan"
// @Failure      502 {object} dto.ErrorResponse "Manufacturing service request failed"
// @Failure      503 {object} dto.ErrorResponse "Manufacturing service unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/production/suggestions [get]
func (h *ProductionHandler) Suggestions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	plan, err := h.production.Plan(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(dto.NewPlanResponse(plan))
}

// Plan handles GET /api/production/plan requests.
//
// @Summary      Production plan view
// @Description  Returns the plan view state: loading, ready with the plan, or failed with the error message. Never calls the manufacturing service.
// @Tags         Production
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.PlanViewResponse} "Plan view"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/production/plan [get]
func (h *ProductionHandler) Plan(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(planViewResponse(h.view.Snapshot()))
}

// Refresh handles POST /api/production/plan/refresh requests.
//
// @Summary      Refresh production plan
// @Description  Reloads the plan view from the manufacturing service and returns the state it settled in. A failed load is reported in the view, not as an HTTP error.
// @Tags         Production
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.PlanViewResponse} "Plan view after the refresh"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/production/plan/refresh [post]
func (h *ProductionHandler) Refresh(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(planViewResponse(h.view.Refresh(c.Request.Context())))
}

// Export handles GET /api/production/plan/export requests.
//
// @Summary      Export production plan
// @Description  Downloads the ready plan view as an XLSX workbook.
// @Tags         Production
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} binary "Workbook"
// @Failure      409 {object} dto.ErrorResponse "Production plan is not ready"
// @Failure      500 {object} dto.ErrorResponse "Workbook could not be written"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/production/plan/export [get]
func (h *ProductionHandler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	plan, err := h.view.ReadyPlan()
	if err != nil {
		metrics.RecordPlanExport(model.OutcomeFailure)
		builder.Fail(err)
		return
	}

	var buf bytes.Buffer
	if err := export.WritePlan(&buf, plan); err != nil {
		metrics.RecordPlanExport(model.OutcomeFailure)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordPlanExport(model.OutcomeSuccess)
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(h.now())+`"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}

func planViewResponse(s service.PlanSnapshot) dto.PlanViewResponse {
	return dto.NewPlanViewResponse(string(s.State), s.Plan, s.Error, s.UpdatedAt)
}
