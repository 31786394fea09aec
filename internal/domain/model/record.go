package model

// Record is a loosely-shaped JSON object exchanged with the manufacturing service.
// Composition records travel as Records because the service has used several field
// spellings over time; the normalize package settles them into one canonical shape.
type Record map[string]any

// AsRecord reports whether v is a JSON object and returns it as a Record.
// Arrays, nil and scalars are not objects.
func AsRecord(v any) (Record, bool) {
	switch t := v.(type) {
	case Record:
		return t, t != nil
	case map[string]any:
		return Record(t), t != nil
	default:
		return nil, false
	}
}

// Lookup returns the value stored under key. A JSON null counts as absent.
func (r Record) Lookup(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Has reports whether key is present, even when its value is null.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
