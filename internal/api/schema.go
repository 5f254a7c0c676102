package api

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response bodies from the remote service are validated against these schemas
// before decoding, so a structurally broken body is classified as a transport
// error instead of surfacing as a half-populated struct.

var startSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"session_id":   map[string]any{"type": "string", "minLength": 1},
		"time_minutes": map[string]any{"type": "integer", "minimum": 1},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer"},
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string"},
					},
				},
				"required": []any{"id", "question", "options"},
			},
		},
	},
	"required": []any{"session_id", "time_minutes", "questions"},
}

var finishSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"result": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct":    map[string]any{"type": "integer", "minimum": 0},
				"total":      map[string]any{"type": "integer", "minimum": 0},
				"percentage": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"grade":      map[string]any{"type": "string", "minLength": 1},
				"time_spent": map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"correct", "total", "percentage", "grade", "time_spent"},
		},
	},
	"required": []any{"result"},
}

var statsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"total_tests":     map[string]any{"type": "integer", "minimum": 0},
		"avg_percentage":  map[string]any{"type": "number"},
		"best_percentage": map[string]any{"type": "number"},
		"grades":          map[string]any{"type": "object"},
		"recent_results":  map[string]any{"type": "array"},
	},
	"required": []any{"total_tests", "avg_percentage", "best_percentage", "grades"},
}

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateBody checks raw against the named schema definition.
func validateBody(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return err
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("malformed %s body: %w", name, err)
	}
	return nil
}

func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value, not Go maps with typed
	// values, so round-trip through JSON.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", name, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource %q: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", name, err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
