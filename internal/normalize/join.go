package normalize

import "github.com/guttosm/production-gateway/internal/domain/model"

// JoinRawMaterials attaches the raw material's code and name to composition
// records that do not carry them. Records are matched to the catalogue by
// numeric raw material id, so "3" and 3 refer to the same material. Records
// without a match are returned as they are. The inputs are not modified.
func JoinRawMaterials(records []model.Record, catalogue []model.RawMaterial) []model.Record {
	if records == nil || catalogue == nil {
		return records
	}

	byID := make(map[float64]model.RawMaterial, len(catalogue))
	for _, m := range catalogue {
		if key, ok := m.ID.Float(); ok {
			byID[key] = m
		}
	}

	out := make([]model.Record, len(records))
	for i, r := range records {
		out[i] = joinOne(r, byID)
	}
	return out
}

func joinOne(r model.Record, byID map[float64]model.RawMaterial) model.Record {
	if r == nil {
		return nil
	}

	key, ok := numericKey(r[FieldRawMaterialID])
	if !ok {
		return r
	}
	m, ok := byID[key]
	if !ok {
		return r
	}

	out := r.Clone()
	if !r.Has(FieldRawMaterialCode) {
		out[FieldRawMaterialCode] = m.Code
	}
	if !r.Has(FieldRawMaterialName) {
		out[FieldRawMaterialName] = m.Name
	}
	return out
}

// FilterByProduct keeps the records whose productId is numerically equal to
// productID.
func FilterByProduct(records []model.Record, productID model.ID) []model.Record {
	want, ok := productID.Float()
	if !ok {
		return []model.Record{}
	}

	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if got, ok := numericKey(r[FieldProductID]); ok && got == want {
			out = append(out, r)
		}
	}
	return out
}
