package rules

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const recordSchemaURL = "https://vrmsort.local/schemas/mapdata.schema.json"

// recordSchema describes the structure Load accepts. Condition values are
// scalars or lists of scalars; null and nested objects are rejected.
const recordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["mapdata"],
  "properties": {
    "mapdata": {
      "type": "object",
      "required": ["unsort", "sorted"],
      "properties": {
        "unsort": {
          "type": "object",
          "required": ["target"],
          "properties": {
            "target": {"type": "object"}
          }
        },
        "sorted": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["directory", "target"],
            "properties": {
              "directory": {"type": "string", "minLength": 1},
              "target": {
                "type": "object",
                "additionalProperties": {"$ref": "#/$defs/condition"}
              }
            }
          }
        }
      }
    }
  },
  "$defs": {
    "scalar": {"type": ["string", "number", "boolean"]},
    "condition": {
      "oneOf": [
        {"$ref": "#/$defs/scalar"},
        {"type": "array", "minItems": 1, "items": {"$ref": "#/$defs/scalar"}}
      ]
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(recordSchemaURL, strings.NewReader(recordSchema)); err != nil {
			compileErr = fmt.Errorf("rule schema load failed: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(recordSchemaURL)
	})
	return compiledSchema, compileErr
}

// Validate checks a decoded rule file against the record schema.
func Validate(doc any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("rule file does not match schema: %w", err)
	}
	return nil
}
