package normalize

import (
	"github.com/guttosm/production-gateway/internal/domain/model"
)

// SuggestionSet is the production suggestion in canonical form, before ranking.
type SuggestionSet struct {
	Entries []model.SuggestionEntry
	// ReportedTotal is the service's own total, present only when an object
	// response carried a numeric totalValue, with or without a products list.
	ReportedTotal *float64
}

// Suggestions normalizes the production suggestion response. The service
// answers either with a bare list of entries or with an envelope
// {"products": [...], "totalValue": n}. A missing subtotal is derived as
// unitValue × quantity for the bare list only. Any other shape yields no
// entries, though an object still reports its numeric totalValue.
func Suggestions(v any) SuggestionSet {
	switch t := v.(type) {
	case []any:
		return SuggestionSet{Entries: entries(t, true)}
	case map[string]any, model.Record:
		envelope, _ := model.AsRecord(t)
		set := SuggestionSet{Entries: []model.SuggestionEntry{}}
		if products, ok := envelope["products"].([]any); ok {
			set.Entries = entries(products, false)
		}
		if total, ok := reportedTotal(envelope["totalValue"]); ok {
			set.ReportedTotal = &total
		}
		return set
	default:
		return SuggestionSet{Entries: []model.SuggestionEntry{}}
	}
}

func entries(items []any, deriveSubtotal bool) []model.SuggestionEntry {
	out := make([]model.SuggestionEntry, 0, len(items))
	for _, item := range items {
		r, _ := model.AsRecord(item)
		out = append(out, entry(r, deriveSubtotal))
	}
	return out
}

func entry(r model.Record, deriveSubtotal bool) model.SuggestionEntry {
	e := model.SuggestionEntry{
		ProductID: model.IDFrom(r["productId"]),
		Code:      text(first(r, "productCode", "code")),
		Name:      text(first(r, "productName", "name")),
		Quantity:  toNumber(first(r, "producibleQuantity", "quantity")),
		UnitValue: toNumber(first(r, "productValue", "unitValue")),
	}

	switch subtotal, ok := r.Lookup("subtotal"); {
	case ok:
		e.Subtotal = toNumber(subtotal)
	case deriveSubtotal:
		e.Subtotal = e.UnitValue * e.Quantity
	}
	return e
}

// reportedTotal accepts only JSON numbers.
func reportedTotal(v any) (float64, bool) {
	if _, isString := v.(string); isString || v == nil {
		return 0, false
	}
	f, ok := asFloat(v)
	if !ok || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func first(r model.Record, keys ...string) any {
	for _, k := range keys {
		if v, ok := r.Lookup(k); ok {
			return v
		}
	}
	return nil
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return string(model.IDFrom(t))
	}
}
