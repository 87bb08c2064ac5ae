package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema describes the shape of a valid configuration document. The
// decoded YAML is validated against it before use, so typos and wrong types
// fail the run instead of being silently ignored.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "languages": {
      "type": "array",
      "items": {"type": "string", "enum": ["shell", "json", "yaml", "go"]}
    },
    "languageVersion": {"type": "string"},
    "indent": {"type": "integer", "minimum": 0, "maximum": 16},
    "include": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "exclude": {"type": "array", "items": {"type": "string", "minLength": 1}}
  }
}`

const schemaID = "canonfmt-config.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(configSchema)))
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaID, doc); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(schemaID)
	})
	return compiledSchema, compileErr
}

// validateDocument checks the decoded YAML document against configSchema.
// The document is round-tripped through JSON so the validator sees JSON
// types rather than YAML ones.
func validateDocument(doc map[string]any) error {
	sch, err := compiled()
	if err != nil {
		return fmt.Errorf("config schema is broken: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return &InvalidConfigError{Wrapped: err}
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &InvalidConfigError{Wrapped: err}
	}

	if err := sch.Validate(instance); err != nil {
		return &InvalidConfigError{Wrapped: err}
	}
	return nil
}
