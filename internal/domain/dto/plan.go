package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/production-gateway/internal/domain/model"
	"github.com/guttosm/production-gateway/internal/normalize"
)

// displayPlaces is the number of decimals shown for quantities and money.
const displayPlaces = 2

// PlanEntryResponse is one row of the production table.
// @Description Production suggestion row formatted for display
type PlanEntryResponse struct {
	ProductID model.ID `json:"productId,omitempty" swaggertype:"integer" example:"1"`
	Code      string   `json:"code" example:"P-001"`
	Name      string   `json:"name" example:"Office chair"`
	Quantity  string   `json:"quantity" example:"4.00"`
	UnitValue string   `json:"unitValue" example:"149.90"`
	// Subtotal is the reported subtotal, or unitValue × quantity when it is zero
	Subtotal string `json:"subtotal" example:"599.60"`
} // @name PlanEntryResponse

// PlanResponse is a production plan ranked by descending unit value.
// @Description Production plan formatted for display
type PlanResponse struct {
	Entries    []PlanEntryResponse `json:"entries"`
	TotalValue string              `json:"totalValue" example:"599.60"`
	// TotalSource is "service" when the manufacturing service reported the total, otherwise "computed"
	TotalSource string `json:"totalSource" example:"computed"`
} // @name PlanResponse

// PlanViewResponse is the state of the production plan view.
// @Description Production plan view state
type PlanViewResponse struct {
	State     string        `json:"state" example:"ready" enums:"loading,ready,failed"`
	Plan      *PlanResponse `json:"plan,omitempty"`
	Error     string        `json:"error,omitempty" example:"Error loading production suggestion: Service Unavailable"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty" example:"2026-01-28T10:00:00Z"`
} // @name PlanViewResponse

// NewPlanResponse formats a plan for display.
func NewPlanResponse(plan model.ProductionPlan) PlanResponse {
	entries := make([]PlanEntryResponse, len(plan.Entries))
	for i, e := range plan.Entries {
		entries[i] = PlanEntryResponse{
			ProductID: e.ProductID,
			Code:      e.Code,
			Name:      e.Name,
			Quantity:  FormatAmount(e.Quantity),
			UnitValue: FormatAmount(e.UnitValue),
			Subtotal:  FormatAmount(normalize.EntryValue(e)),
		}
	}

	return PlanResponse{
		Entries:     entries,
		TotalValue:  FormatAmount(plan.TotalValue),
		TotalSource: plan.TotalSource,
	}
}

// NewPlanViewResponse converts a view state. Plan is set only in the ready state.
func NewPlanViewResponse(state string, plan *model.ProductionPlan, errMsg string, updatedAt time.Time) PlanViewResponse {
	resp := PlanViewResponse{State: state, Error: errMsg}
	if plan != nil {
		p := NewPlanResponse(*plan)
		resp.Plan = &p
	}
	if !updatedAt.IsZero() {
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// FormatAmount renders v with two fixed decimals.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(displayPlaces)
}
