// Package model defines the core domain entities served by the production gateway.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberLiteral = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// ID is an opaque identifier assigned by the manufacturing service.
// Both JSON numbers and JSON strings are accepted; numeric ids are written back as numbers.
type ID string

// IDFrom converts a decoded JSON value into an ID. Unsupported values yield an empty ID.
func IDFrom(v any) ID {
	switch t := v.(type) {
	case nil:
		return ""
	case ID:
		return t
	case string:
		return ID(t)
	case json.Number:
		return ID(t.String())
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return ID(strconv.FormatFloat(t, 'f', -1, 64))
	case float32:
		return IDFrom(float64(t))
	case int:
		return ID(strconv.Itoa(t))
	case int64:
		return ID(strconv.FormatInt(t, 10))
	case int32:
		return ID(strconv.FormatInt(int64(t), 10))
	case uint:
		return ID(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return ID(strconv.FormatUint(t, 10))
	case uint32:
		return ID(strconv.FormatUint(uint64(t), 10))
	default:
		return ""
	}
}

// Float returns the numeric value of the id, if it has one.
func (id ID) Float() (float64, bool) {
	s := strings.TrimSpace(string(id))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsZero reports whether the id is empty.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// MarshalJSON writes numeric ids as JSON numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if numberLiteral.MatchString(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*id = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", raw, err)
	}
	*id = ID(n.String())
	return nil
}
