// Package normalize reconciles the loosely-shaped payloads exchanged with the
// manufacturing service into the canonical shapes served by the gateway.
//
// Every function in this package is total: unexpected shapes degrade to an
// empty, omitted or unchanged result and nothing here returns an error.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/production-gateway/internal/domain/model"
)

// Quantity is the result of ParseQuantity: either a finite number or the
// original input, untouched.
type Quantity struct {
	// Value is the parsed number. Meaningful only when Numeric is true.
	Value float64
	// Raw is the input as it was given.
	Raw any
	// Numeric reports whether the input was read as a finite number.
	Numeric bool
}

// Any returns the value to store in a payload. Numeric strings become numbers;
// every other input is returned as given, numbers included.
func (q Quantity) Any() any {
	if _, isString := q.Raw.(string); isString && q.Numeric {
		return q.Value
	}
	return q.Raw
}

// ParseQuantity reads a quantity that may be a number or text using a comma as
// decimal separator ("12,5"). Only the first comma is replaced. Blank text reads
// as zero. Input that cannot be read as a finite number is returned unchanged in Raw.
func ParseQuantity(v any) Quantity {
	q := Quantity{Raw: v}

	if s, ok := v.(string); ok {
		if f, ok := parseNumberText(strings.Replace(strings.TrimSpace(s), ",", ".", 1)); ok {
			q.Value, q.Numeric = f, true
		}
		return q
	}

	if f, ok := asFloat(v); ok && isFinite(f) {
		q.Value, q.Numeric = f, true
	}
	return q
}

// asFloat converts Go numeric kinds to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// parseNumberText reads trimmed number text: empty text is zero, decimal and
// exponent notation are accepted, and so are unsigned 0x, 0o and 0b integers.
func parseNumberText(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	if !isDecimalLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

// isDecimalLiteral rejects spellings strconv accepts but plain number text does
// not use, such as "Inf", "NaN", hex floats and digit separators.
func isDecimalLiteral(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

// toNumber reads v the way a loosely-typed JSON consumer would: missing values,
// blank strings and unreadable text count as zero.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		f, _ := parseNumberText(strings.TrimSpace(t))
		return f
	case model.ID:
		return toNumber(string(t))
	}

	if f, ok := asFloat(v); ok && isFinite(f) {
		return f
	}
	return 0
}

// numericKey returns the number used to match identifiers across collections.
// Values without a numeric reading never match.
func numericKey(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case model.ID:
		return t.Float()
	case string:
		return model.ID(t).Float()
	}

	if f, ok := asFloat(v); ok && isFinite(f) {
		return f, true
	}
	return 0, false
}
