// Package rules holds the persisted rule record, the RuleSet built from it,
// and derivation of the advisory value pool from a corpus.
package rules

import "fmt"

// FallbackDestination is the reserved label of the fallback entry.
const FallbackDestination = "DoNotUse"

// ScaffoldDestinations are written, with empty conditions, by Scaffold for
// the operator to fill in.
var ScaffoldDestinations = []string{"folder-1", "folder-2", FallbackDestination}

// Rule sends a file to Destination when every condition present in the
// file's metadata matches. A condition value is either a scalar or a list of
// alternatives.
type Rule struct {
	Destination string
	Conditions  map[string]any
}

// RuleSet is read-only once built and may be shared across a batch.
type RuleSet struct {
	// Rules are evaluated in order; the first full match wins.
	Rules []Rule
	// Fallback is nil when no fallback entry is configured.
	Fallback *Rule
	// Warnings lists entries whose role is ambiguous. They do not prevent
	// classification.
	Warnings []string
}

// HasFallback reports whether unmatched files have somewhere to go.
func (rs *RuleSet) HasFallback() bool {
	return rs != nil && rs.Fallback != nil
}

// FromRecord splits the classification section into ordered conditional
// rules and the fallback. The first entry labelled FallbackDestination with
// empty conditions is the fallback; any other entry, including further
// entries with the reserved label, stays a conditional rule and is flagged
// in Warnings.
func FromRecord(rec *Record) *RuleSet {
	rs := &RuleSet{}
	for i, entry := range rec.MapData.Sorted {
		rule := Rule{Destination: entry.Directory, Conditions: entry.Target}
		if rule.Conditions == nil {
			rule.Conditions = map[string]any{}
		}

		if entry.Directory == FallbackDestination {
			switch {
			case len(rule.Conditions) == 0 && rs.Fallback == nil:
				r := rule
				rs.Fallback = &r
				continue
			case len(rule.Conditions) == 0:
				rs.Warnings = append(rs.Warnings,
					fmt.Sprintf("entry %d: duplicate %q entry with no conditions is ignored as a fallback and can never match", i, FallbackDestination))
			default:
				rs.Warnings = append(rs.Warnings,
					fmt.Sprintf("entry %d: %q entry has conditions and is treated as an ordinary rule", i, FallbackDestination))
			}
		} else if len(rule.Conditions) == 0 {
			rs.Warnings = append(rs.Warnings,
				fmt.Sprintf("entry %d: %q has no conditions and can never match", i, entry.Directory))
		}

		rs.Rules = append(rs.Rules, rule)
	}
	return rs
}
