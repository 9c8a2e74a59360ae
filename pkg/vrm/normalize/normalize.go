// Package normalize holds the value canonicalization used when deriving
// rules from a corpus and the comparison normalization used when matching.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/gowebpki/jcs"
)

// Canonicalize returns v unchanged when it can serve as a set member
// (null, bool, number, string). Objects and arrays become their RFC 8785
// canonical JSON text so structurally equal values collapse to one entry.
func Canonicalize(v any) any {
	switch v.(type) {
	case nil, bool, float64, string, json.Number:
		return v
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		// json.Marshal already sorts object keys
		return string(raw)
	}
	return string(canonical)
}

// ForCompare trims and lower-cases strings and turns the literal strings
// "true" and "false" into booleans. Everything else passes through. Both
// sides of a comparison must go through it.
func ForCompare(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// Equal compares an expected rule value with an actual metadata value after
// normalizing both.
func Equal(expected, actual any) bool {
	return same(ForCompare(expected), ForCompare(actual))
}

// same is equality over normalized JSON values. Composite values are
// compared through their canonical form since Go cannot compare them with
// ==.
func same(a, b any) bool {
	switch a.(type) {
	case []any, map[string]any:
		switch b.(type) {
		case []any, map[string]any:
			return Canonicalize(a) == Canonicalize(b)
		}
		return false
	}
	switch b.(type) {
	case []any, map[string]any:
		return false
	}
	return a == b
}
