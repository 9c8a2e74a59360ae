// Package meta detects which metadata schema generation a container uses
// and normalizes either generation into one UnifiedMetadata record.
package meta

import (
	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
)

// SchemaVersion identifies the metadata schema generation of a container.
type SchemaVersion int

const (
	Unknown SchemaVersion = iota
	Legacy
	Current
)

// Extension keys that mark each generation under the top-level
// "extensions" object.
const (
	LegacyMarker  = "VRM"
	CurrentMarker = "VRMC_vrm"
)

// String returns the version tag written to reports.
func (v SchemaVersion) String() string {
	switch v {
	case Legacy:
		return "0.x"
	case Current:
		return "1.0"
	default:
		return "unknown"
	}
}

func (v SchemaVersion) marker() string {
	switch v {
	case Legacy:
		return LegacyMarker
	case Current:
		return CurrentMarker
	default:
		return ""
	}
}

// Detect inspects the top-level extensions object. The legacy marker wins
// when both are present.
func Detect(document any) (SchemaVersion, error) {
	root, ok := document.(map[string]any)
	if !ok {
		return Unknown, &vrmerrors.SchemaError{Err: vrmerrors.ErrMetadataNotFound}
	}
	extensions, ok := root["extensions"].(map[string]any)
	if !ok {
		return Unknown, &vrmerrors.SchemaError{Err: vrmerrors.ErrMetadataNotFound}
	}
	if _, ok := extensions[LegacyMarker]; ok {
		return Legacy, nil
	}
	if _, ok := extensions[CurrentMarker]; ok {
		return Current, nil
	}
	return Unknown, &vrmerrors.SchemaError{Err: vrmerrors.ErrMetadataNotFound}
}

// Native returns the schema-specific meta object, the key set rules are
// evaluated against. A marker without a meta object is treated the same as
// a missing marker.
func Native(document any, version SchemaVersion) (map[string]any, error) {
	root, _ := document.(map[string]any)
	extensions, _ := root["extensions"].(map[string]any)
	ext, _ := extensions[version.marker()].(map[string]any)
	m, ok := ext["meta"].(map[string]any)
	if !ok {
		return nil, &vrmerrors.SchemaError{Err: vrmerrors.ErrMetadataNotFound}
	}
	return m, nil
}
