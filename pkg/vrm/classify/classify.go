// Package classify evaluates a file's native metadata against a RuleSet.
package classify

import (
	"github.com/provide-io/vrmsort/pkg/vrm/normalize"
	"github.com/provide-io/vrmsort/pkg/vrm/rules"
)

// Decision is the outcome for one file.
type Decision struct {
	Destination string
	// Fallback is set when no conditional rule matched and the fallback
	// destination was used.
	Fallback bool
	// Rule is the index of the matching conditional rule, -1 otherwise.
	Rule int
}

// None means the file has no destination and must be left in place.
var None = Decision{Rule: -1}

// Matched reports whether the decision names a destination.
func (d Decision) Matched() bool {
	return d.Destination != ""
}

// Classify returns the destination for native, the schema-native meta
// object. Conditional rules are tried in order and the first full match
// wins, even when a later rule is more specific.
func Classify(native map[string]any, rs *rules.RuleSet) Decision {
	if rs == nil {
		return None
	}
	for i, rule := range rs.Rules {
		if Matches(native, rule) {
			return Decision{Destination: rule.Destination, Rule: i}
		}
	}
	if rs.Fallback != nil {
		return Decision{Destination: rs.Fallback.Destination, Fallback: true, Rule: -1}
	}
	return None
}

// Matches applies AND across the rule's condition keys that are present in
// native, and OR across the members of a list-valued condition. Condition
// keys missing from native are not evaluated, but a rule with no evaluated
// key never matches.
func Matches(native map[string]any, rule rules.Rule) bool {
	evaluated := 0
	for key, expected := range rule.Conditions {
		actual, ok := native[key]
		if !ok {
			continue
		}
		evaluated++
		if actual == nil {
			return false
		}
		if !conditionHolds(expected, actual) {
			return false
		}
	}
	return evaluated > 0
}

func conditionHolds(expected, actual any) bool {
	alternatives, ok := expected.([]any)
	if !ok {
		return normalize.Equal(expected, actual)
	}
	for _, alt := range alternatives {
		if normalize.Equal(alt, actual) {
			return true
		}
	}
	return false
}
