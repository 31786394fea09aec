package normalize

import "github.com/guttosm/production-gateway/internal/domain/model"

// UpdateDescriptor is the canonical form of a composition update: which
// association to address and the payload to send.
type UpdateDescriptor struct {
	AssociationID any
	// Payload is nil when the call carried no object payload.
	Payload model.Record
}

// CreateCall reduces the historical create call shapes to one canonical
// payload:
//
//	CreateCall(payload)
//	CreateCall(productID, payload)
//	CreateCall(productID, rawMaterialID, requiredQuantity)
//
// Any other shape yields an empty payload.
func CreateCall(args ...any) model.Record {
	switch {
	case len(args) == 1:
		if payload, ok := model.AsRecord(args[0]); ok {
			return CanonicalizePayload(payload)
		}
	case len(args) == 2:
		if payload, ok := model.AsRecord(args[1]); ok {
			merged := recordOf(FieldProductID, args[0])
			for k, v := range payload {
				merged[k] = v
			}
			return CanonicalizePayload(merged)
		}
	case len(args) >= 3:
		return CanonicalizePayload(positional(args[0], args[1], args[2]))
	}
	return model.Record{}
}

// UpdateCall reduces the historical update call shapes to one descriptor:
//
//	UpdateCall(associationID, payload)
//	UpdateCall(_, associationID, payload)
//	UpdateCall(_, associationID, productID, rawMaterialID, requiredQuantity)
//
// Anything else is read as (associationID, payload).
func UpdateCall(args ...any) UpdateDescriptor {
	if len(args) == 2 {
		if payload, ok := model.AsRecord(args[1]); ok {
			return UpdateDescriptor{AssociationID: args[0], Payload: CanonicalizePayload(payload)}
		}
	}

	if len(args) >= 3 {
		if payload, ok := model.AsRecord(args[2]); ok {
			return UpdateDescriptor{AssociationID: args[1], Payload: CanonicalizePayload(payload)}
		}
	}

	if len(args) >= 4 {
		var requiredQuantity any
		if len(args) >= 5 {
			requiredQuantity = args[4]
		}
		return UpdateDescriptor{
			AssociationID: args[1],
			Payload:       CanonicalizePayload(positional(args[2], args[3], requiredQuantity)),
		}
	}

	d := UpdateDescriptor{AssociationID: arg(args, 0)}
	if payload, ok := model.AsRecord(arg(args, 1)); ok {
		d.Payload = CanonicalizePayload(payload)
	}
	return d
}

// DeleteCall returns the association id addressed by a delete call: the only
// argument, or the second one when a legacy leading argument is present.
func DeleteCall(args ...any) any {
	if len(args) == 1 {
		return args[0]
	}
	return arg(args, 1)
}

func positional(productID, rawMaterialID, requiredQuantity any) model.Record {
	r := recordOf(FieldProductID, productID)
	if rawMaterialID != nil {
		r[FieldRawMaterialID] = rawMaterialID
	}
	if requiredQuantity != nil {
		r[FieldRequiredQuantity] = requiredQuantity
	}
	return r
}

func recordOf(key string, v any) model.Record {
	r := model.Record{}
	if v != nil {
		r[key] = v
	}
	return r
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
