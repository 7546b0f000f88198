// Package validation implements the ordered, short-circuiting field checks run
// against a request payload before any write reaches the store.
package validation

import (
	"encoding/json"
	"math"
)

// Payload is the JSON object a write operation was given, already unwrapped
// from its optional "data" envelope. JSON null is treated as absent.
type Payload map[string]any

// FromBody extracts the "data" object of a decoded request body. A missing or
// non-object envelope yields an empty payload.
func FromBody(body map[string]any) Payload {
	data, ok := body["data"].(map[string]any)
	if !ok {
		return Payload{}
	}
	return Payload(data)
}

// Lookup returns the value of field and whether it is present and not null.
func (p Payload) Lookup(field string) (any, bool) {
	v, ok := p[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns field as a string, or "" when absent or not a string.
func (p Payload) String(field string) string {
	v, _ := p.Lookup(field)
	s, _ := v.(string)
	return s
}

// Int returns field as an integer, or 0 when absent or not an integer.
func (p Payload) Int(field string) int {
	v, _ := p.Lookup(field)
	n, _ := asInteger(v)
	return n
}

// Objects returns the entries of a list field that are JSON objects.
func (p Payload) Objects(field string) []Payload {
	v, _ := p.Lookup(field)
	list, _ := v.([]any)
	out := make([]Payload, 0, len(list))
	for _, entry := range list {
		if obj, ok := entry.(map[string]any); ok {
			out = append(out, Payload(obj))
		}
	}
	return out
}

// asInteger accepts the numeric shapes a decoder may produce and rejects
// fractional values.
func asInteger(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) || n != math.Trunc(n) || math.Abs(n) > math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return asInteger(f)
	default:
		return 0, false
	}
}
