package remote

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const scoreResultSchemaURL = "schema://score-result.json"

// scoreResultSchema describes a remote scoring response.
const scoreResultSchema = `{
  "type": "object",
  "required": ["score", "level", "suggestion", "corrected_sentence"],
  "properties": {
    "score": {"type": "number", "minimum": 0, "maximum": 100},
    "level": {"enum": ["Beginner", "Intermediate", "Advanced"]},
    "suggestion": {"type": "string"},
    "corrected_sentence": {"type": "string"}
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func scoreSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(scoreResultSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(scoreResultSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(scoreResultSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateScoreResult checks raw against the score result schema.
func validateScoreResult(op string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidPayloadError{Op: op, Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := scoreSchema()
	if err != nil {
		return &InvalidPayloadError{Op: op, Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return &InvalidPayloadError{Op: op, Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
