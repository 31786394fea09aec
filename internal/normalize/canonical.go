package normalize

import (
	"strings"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

// Canonical composition record fields.
const (
	FieldID               = "id"
	FieldProductID        = "productId"
	FieldRawMaterialID    = "rawMaterialId"
	FieldRequiredQuantity = "requiredQuantity"
	FieldQuantityRequired = "quantityRequired"
	FieldRawMaterialCode  = "rawMaterialCode"
	FieldRawMaterialName  = "rawMaterialName"
)

// fieldAlias resolves one canonical field from the first present source.
// A dotted source ("product.id") reads a field of a nested object.
type fieldAlias struct {
	target   string
	sources  []string
	quantity bool
	response bool
}

// fieldAliases lists, in precedence order, every spelling the manufacturing
// service has used for a composition field. Entries marked response apply only
// to records read from the service.
var fieldAliases = []fieldAlias{
	{target: FieldProductID, sources: []string{"productId", "product.id"}},
	{target: FieldRawMaterialID, sources: []string{"rawMaterialId", "materialId", "rawMaterial.id"}},
	{target: FieldRequiredQuantity, sources: []string{"requiredQuantity", "quantityRequired", "quantity"}, quantity: true},
	{target: FieldQuantityRequired, sources: []string{"requiredQuantity", "quantityRequired", "quantity"}, quantity: true, response: true},
	{target: FieldRawMaterialCode, sources: []string{"rawMaterialCode", "materialCode", "rawMaterial.code"}, response: true},
	{target: FieldRawMaterialName, sources: []string{"rawMaterialName", "materialName", "rawMaterial.name"}, response: true},
}

// CanonicalizePayload returns a copy of a composition payload bound for the
// service, with productId, rawMaterialId and requiredQuantity filled in from
// whichever legacy spelling is present. Original fields are kept. Fields that
// cannot be resolved are left out.
func CanonicalizePayload(r model.Record) model.Record {
	return canonicalize(r, false)
}

// CanonicalizeResponse is CanonicalizePayload for records read from the
// service. It also keeps quantityRequired in sync with requiredQuantity and
// resolves the raw material's code and name.
func CanonicalizeResponse(r model.Record) model.Record {
	return canonicalize(r, true)
}

// CanonicalizeResponseValue canonicalizes v when it is a JSON object and
// returns any other value unchanged.
func CanonicalizeResponseValue(v any) any {
	if r, ok := model.AsRecord(v); ok {
		return CanonicalizeResponse(r)
	}
	return v
}

func canonicalize(r model.Record, response bool) model.Record {
	if r == nil {
		return nil
	}

	out := r.Clone()
	for _, alias := range fieldAliases {
		if alias.response && !response {
			continue
		}
		v, ok := resolve(r, alias.sources)
		if !ok {
			continue
		}
		if alias.quantity {
			v = ParseQuantity(v).Any()
		}
		out[alias.target] = v
	}
	return out
}

// resolve returns the value of the first source present with a non-null value.
func resolve(r model.Record, sources []string) (any, bool) {
	for _, src := range sources {
		if v, ok := lookupPath(r, src); ok {
			return v, true
		}
	}
	return nil, false
}

func lookupPath(r model.Record, path string) (any, bool) {
	parent, key, nested := strings.Cut(path, ".")
	if !nested {
		return r.Lookup(path)
	}

	v, ok := r.Lookup(parent)
	if !ok {
		return nil, false
	}
	child, ok := model.AsRecord(v)
	if !ok {
		return nil, false
	}
	return lookupPath(child, key)
}
