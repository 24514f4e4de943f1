// Package docschema validates persisted JSON documents against JSON schemas
// before they are decoded into engine state.
package docschema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names a JSON schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// ErrInvalidDocument indicates a document that is not valid JSON or does
// not conform to its schema.
type ErrInvalidDocument struct {
	Schema string
	Err    error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// compiled caches compiled schemas by name.
var compiled sync.Map // map[string]*jsonschema.Schema

// Validate checks raw against schema. Returns *ErrInvalidDocument on failure.
func Validate(schema *Schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidDocument{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s, err := compile(schema)
	if err != nil {
		return &ErrInvalidDocument{Schema: schema.Name, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := s.Validate(parsed); err != nil {
		return &ErrInvalidDocument{Schema: schema.Name, Err: err}
	}
	return nil
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, so round-trip the Go map.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiled.Store(schema.Name, s)
	return s, nil
}
