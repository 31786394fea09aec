package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		wantAny     any
		wantNumeric bool
	}{
		{name: "comma decimal", input: "12,5", wantAny: 12.5, wantNumeric: true},
		{name: "dot decimal", input: "12.5", wantAny: 12.5, wantNumeric: true},
		{name: "surrounding whitespace", input: "  7 ", wantAny: float64(7), wantNumeric: true},
		{name: "only the first comma is replaced", input: "1,2,3", wantAny: "1,2,3"},
		{name: "text", input: "abc", wantAny: "abc"},
		{name: "blank string reads as zero", input: "   ", wantAny: float64(0), wantNumeric: true},
		{name: "empty string reads as zero", input: "", wantAny: float64(0), wantNumeric: true},
		{name: "hex integer", input: "0x10", wantAny: float64(16), wantNumeric: true},
		{name: "octal integer", input: "0o17", wantAny: float64(15), wantNumeric: true},
		{name: "binary integer", input: " 0b101 ", wantAny: float64(5), wantNumeric: true},
		{name: "signed hex stays text", input: "-0x10", wantAny: "-0x10"},
		{name: "hex with fraction stays text", input: "0x1,5", wantAny: "0x1,5"},
		{name: "bare prefix stays text", input: "0x", wantAny: "0x"},
		{name: "infinity text", input: "Infinity", wantAny: "Infinity"},
		{name: "nan text", input: "NaN", wantAny: "NaN"},
		{name: "overflow", input: "1e400", wantAny: "1e400"},
		{name: "float passes through", input: 3.25, wantAny: 3.25, wantNumeric: true},
		{name: "int passes through", input: 4, wantAny: 4, wantNumeric: true},
		{name: "json number passes through", input: json.Number("5"), wantAny: json.Number("5"), wantNumeric: true},
		{name: "nil", input: nil, wantAny: nil},
		{name: "bool", input: true, wantAny: true},
		{name: "object", input: map[string]any{"a": 1}, wantAny: map[string]any{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseQuantity(tt.input)
			assert.Equal(t, tt.wantAny, q.Any())
			assert.Equal(t, tt.wantNumeric, q.Numeric)
			assert.Equal(t, tt.input, q.Raw)
		})
	}
}

func TestParseQuantity_NonFiniteNumberPassesThrough(t *testing.T) {
	q := ParseQuantity(math.Inf(1))

	assert.False(t, q.Numeric)
	assert.True(t, math.IsInf(q.Any().(float64), 1))
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "nil", input: nil, want: 0},
		{name: "float", input: 2.5, want: 2.5},
		{name: "numeric string", input: " 4 ", want: 4},
		{name: "comma string is not a number", input: "4,5", want: 0},
		{name: "blank string", input: "", want: 0},
		{name: "hex string", input: "0x10", want: 16},
		{name: "text", input: "abc", want: 0},
		{name: "true", input: true, want: 1},
		{name: "false", input: false, want: 0},
		{name: "object", input: map[string]any{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toNumber(tt.input))
		})
	}
}

func TestNumericKey(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{name: "float", input: float64(3), want: 3, wantOK: true},
		{name: "int", input: 3, want: 3, wantOK: true},
		{name: "string", input: "3", want: 3, wantOK: true},
		{name: "decimal string", input: "3.0", want: 3, wantOK: true},
		{name: "blank", input: "", wantOK: false},
		{name: "text", input: "M3", wantOK: false},
		{name: "nil", input: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := numericKey(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
