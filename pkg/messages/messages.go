// Package messages provides the user-facing message catalog. The catalog
// is loaded once at startup and passed to whatever renders output.
package messages

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLangFile is picked up from the working directory when present.
const DefaultLangFile = "lang_ja_jp.json"

// Message keys
const (
	ErrorParse             = "error_parse"
	InfoMapdataCreated     = "info_mapdata_created"
	InfoMovingFile         = "info_moving_file"
	InfoMovingFileDoNotUse = "info_moving_file_donotuse"
	InfoSortComplete       = "info_sort_complete"
	InfoCSVSaved           = "info_csv_saved"
	LicenseInfoTitle       = "license_info_title"
	headerPrefix           = "header_"
	placeholder            = "{}"
)

var defaults = map[string]string{
	ErrorParse:             "[ERROR] Failed to parse {}: {}",
	InfoMapdataCreated:     "[INFO] mapdata.json created successfully → {}",
	InfoMovingFile:         "[INFO] Moving {} to {}",
	InfoMovingFileDoNotUse: "[INFO] Moving {} to {} (DoNotUse rule)",
	InfoSortComplete:       "[INFO] File sorting complete!",
	InfoCSVSaved:           "[INFO] CSV file saved successfully → {}",
	LicenseInfoTitle:       "=== License Information for {} (VRM {}) ===",

	"header_file_name":            "File Name",
	"header_vrm_version":          "VRM Version",
	"header_model_name":           "Model Name",
	"header_author":               "Author",
	"header_contact":              "Contact Information",
	"header_reference_url":        "Reference URL",
	"header_commercial_usage":     "Commercial Usage",
	"header_redistribution":       "Redistribution",
	"header_credit_notation":      "Credit Notation",
	"header_modification":         "Modification Allowed",
	"header_avatar_permission":    "Avatar Permission",
	"header_sexual_expression":    "Sexual Expression",
	"header_violence_expression":  "Violence Expression",
	"header_license":              "License",
	"header_other_permission_url": "Other Permission URL",
	"header_other_license_url":    "Other License URL",
}

// Catalog is an immutable message table.
type Catalog struct {
	messages map[string]string
}

// Default returns the built-in English catalog.
func Default() *Catalog {
	return merge(nil)
}

// Load returns the default catalog with entries from path layered on top.
// The file is JSON or YAML mapping keys to strings.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return merge(overrides), nil
}

// LoadOptional is Load that tolerates a missing or broken file: it falls back
// to the defaults and reports the problem through warn.
func LoadOptional(path string, warn func(msg string, args ...interface{})) *Catalog {
	if path == "" {
		return Default()
	}
	if _, err := os.Stat(path); err != nil {
		return Default()
	}
	c, err := Load(path)
	if err != nil {
		if warn != nil {
			warn("Failed to load localization file", "path", path, "error", err)
		}
		return Default()
	}
	return c
}

func merge(overrides map[string]string) *Catalog {
	m := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		m[k] = v
	}
	for k, v := range overrides {
		m[k] = v
	}
	return &Catalog{messages: m}
}

// Get returns the message for key, or key itself when unknown.
func (c *Catalog) Get(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}

// Format fills the "{}" placeholders of the message in order.
func (c *Catalog) Format(key string, args ...any) string {
	msg := c.Get(key)
	var b strings.Builder
	for _, arg := range args {
		i := strings.Index(msg, placeholder)
		if i < 0 {
			break
		}
		b.WriteString(msg[:i])
		fmt.Fprint(&b, arg)
		msg = msg[i+len(placeholder):]
	}
	b.WriteString(msg)
	return b.String()
}

// Header returns the column label for a metadata field.
func (c *Catalog) Header(field string) string {
	return c.Get(headerPrefix + field)
}
