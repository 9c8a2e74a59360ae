package rules

import (
	"github.com/provide-io/vrmsort/pkg/vrm/meta"
	"github.com/provide-io/vrmsort/pkg/vrm/normalize"
)

// Derive pools the distinct values of every recognized license key across
// natives (schema-native meta objects). Keys outside keys, null values and
// empty strings are skipped. A key seen with one distinct value maps to that
// value; several distinct values stay a list in first-seen order.
func Derive(natives []map[string]any, keys meta.KeySet) Pool {
	seen := make(map[string]map[any]struct{})
	order := make(map[string][]any)
	var keyOrder []string

	for _, native := range natives {
		for key, value := range native {
			if !keys.Contains(key) {
				continue
			}
			if value == nil || value == "" {
				continue
			}
			canonical := normalize.Canonicalize(value)
			set, ok := seen[key]
			if !ok {
				set = make(map[any]struct{})
				seen[key] = set
				keyOrder = append(keyOrder, key)
			}
			if _, dup := set[canonical]; dup {
				continue
			}
			set[canonical] = struct{}{}
			order[key] = append(order[key], canonical)
		}
	}

	target := make(map[string]any, len(keyOrder))
	for _, key := range keyOrder {
		values := order[key]
		if len(values) == 1 {
			target[key] = values[0]
		} else {
			target[key] = values
		}
	}
	return Pool{Target: target}
}

// Scaffold wraps a derived pool in a rule record whose classification
// section holds one empty entry per ScaffoldDestinations label.
func Scaffold(pool Pool) *Record {
	sorted := make([]Entry, 0, len(ScaffoldDestinations))
	for _, dir := range ScaffoldDestinations {
		sorted = append(sorted, Entry{Directory: dir, Target: map[string]any{}})
	}
	return &Record{MapData: MapData{Unsort: pool, Sorted: sorted}}
}
