package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
)

// Record is the persisted rule file:
//
//	{"mapdata": {"unsort": {"target": {...}}, "sorted": [{"directory": ..., "target": {...}}]}}
type Record struct {
	MapData MapData `json:"mapdata"`
}

// MapData holds the two sections of a rule file.
type MapData struct {
	// Unsort is advisory: the values observed in the corpus.
	Unsort Pool `json:"unsort"`
	// Sorted is the ordered classification section.
	Sorted []Entry `json:"sorted"`
}

// Pool maps each license key to a scalar, or a list when the corpus held
// more than one distinct value.
type Pool struct {
	Target map[string]any `json:"target"`
}

// Entry is one destination and its conditions.
type Entry struct {
	Directory string         `json:"directory"`
	Target    map[string]any `json:"target"`
}

// Load reads, validates and builds a RuleSet from a rule file. Any problem
// is a *RuleSetError.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &vrmerrors.RuleSetError{Source: path, Err: err}
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, &vrmerrors.RuleSetError{Source: path, Err: err}
	}
	return FromRecord(rec), nil
}

// Parse decodes and structurally validates a rule file.
func Parse(data []byte) (*Record, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &rec, nil
}

// Save writes rec as indented JSON without HTML escaping so non-ASCII and
// URL values stay readable for hand editing.
func Save(path string, rec *Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
