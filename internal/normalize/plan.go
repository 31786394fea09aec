package normalize

import (
	"sort"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

// BuildPlan ranks the entries by descending unit value and settles the plan
// total. Entries with equal unit value keep their relative order. The total is
// the service's reported figure when there is one, otherwise ComputeTotal.
func BuildPlan(set SuggestionSet) model.ProductionPlan {
	entries := make([]model.SuggestionEntry, len(set.Entries))
	copy(entries, set.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UnitValue > entries[j].UnitValue
	})

	plan := model.ProductionPlan{Entries: entries}
	if set.ReportedTotal != nil {
		plan.TotalValue = *set.ReportedTotal
		plan.TotalSource = model.TotalSourceService
		return plan
	}
	plan.TotalValue = ComputeTotal(entries)
	plan.TotalSource = model.TotalSourceComputed
	return plan
}

// ComputeTotal sums the entries' subtotals. A zero subtotal falls back to
// unitValue × quantity.
func ComputeTotal(entries []model.SuggestionEntry) float64 {
	var total float64
	for _, e := range entries {
		total += EntryValue(e)
	}
	return total
}

// EntryValue is the value an entry contributes to the plan total.
func EntryValue(e model.SuggestionEntry) float64 {
	if e.Subtotal != 0 {
		return e.Subtotal
	}
	return e.UnitValue * e.Quantity
}
