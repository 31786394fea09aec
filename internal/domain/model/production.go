package model

// Sources of a plan's total value.
const (
	TotalSourceService  = "service"
	TotalSourceComputed = "computed"
)

// SuggestionEntry is one row of the production suggestion: how many units of a
// product the current stock allows, and what they are worth.
//
// @Description Producible quantity and value of one product
type SuggestionEntry struct {
	ProductID ID      `json:"productId,omitempty" swaggertype:"integer" example:"1"`
	Code      string  `json:"code" example:"P-001"`
	Name      string  `json:"name" example:"Office chair"`
	Quantity  float64 `json:"quantity" example:"4"`
	UnitValue float64 `json:"unitValue" example:"149.9"`
	Subtotal  float64 `json:"subtotal" example:"599.6"`
}

// ProductionPlan is the display-ready production suggestion.
// Entries are ordered by descending unit value.
type ProductionPlan struct {
	Entries     []SuggestionEntry `json:"entries"`
	TotalValue  float64           `json:"totalValue" example:"599.6"`
	TotalSource string            `json:"totalSource" example:"computed"`
}

// EmptyPlan returns a plan with no entries and a zero total.
func EmptyPlan() ProductionPlan {
	return ProductionPlan{
		Entries:     []SuggestionEntry{},
		TotalSource: TotalSourceComputed,
	}
}
