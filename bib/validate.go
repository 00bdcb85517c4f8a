package bib

import (
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// bibliographySchema validates the shape of a bibliography document
// before any entry is bound. Scalar fields that YAML may parse as
// numbers (date, volume, issue, pages, edition) accept both forms.
const bibliographySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "properties": {
      "type": {"type": "string"},
      "title": {"type": "string"},
      "author": {
        "anyOf": [
          {"type": "string"},
          {"type": "array", "items": {"type": "string"}}
        ]
      },
      "date": {"anyOf": [{"type": "string"}, {"type": "integer"}]},
      "container": {"type": "string"},
      "volume": {"anyOf": [{"type": "string"}, {"type": "integer"}]},
      "issue": {"anyOf": [{"type": "string"}, {"type": "integer"}]},
      "pages": {"anyOf": [{"type": "string"}, {"type": "integer"}]},
      "publisher": {"type": "string"},
      "edition": {"anyOf": [{"type": "string"}, {"type": "integer"}]},
      "url": {"type": "string"},
      "doi": {"type": "string"},
      "note": {"type": "string"}
    },
    "required": ["title"],
    "additionalProperties": false
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	schemaData, err := jsonschema.UnmarshalJSON(strings.NewReader(bibliographySchema))
	if err != nil {
		panic(fmt.Sprintf("bib: failed to parse bibliography schema: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("bibliography.schema.json", schemaData); err != nil {
		panic(fmt.Sprintf("bib: failed to add schema resource: %v", err))
	}

	compiled, err := c.Compile("bibliography.schema.json")
	if err != nil {
		panic(fmt.Sprintf("bib: failed to compile schema: %v", err))
	}
	return compiled
}

// ValidationError wraps a schema validation failure with a cleaner
// message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bibliography validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validate checks the raw YAML document against the bibliography schema.
// An empty document is valid.
func validate(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse bibliography: %w", err)
	}
	if raw == nil {
		return nil
	}

	if err := compiledSchema.Validate(jsonify(raw)); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// jsonify rewrites a decoded YAML tree into the value kinds the schema
// validator accepts. YAML resolves unquoted dates to time.Time, which has
// no JSON counterpart; those become date strings again.
func jsonify(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = jsonify(val)
		}
		return t
	case map[any]any:
		// Non-string mapping keys, e.g. a purely numeric entry key.
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonify(val)
		}
		return m
	case []any:
		for i := range t {
			t[i] = jsonify(t[i])
		}
		return t
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return v
	}
}
