package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pipetrak/pipetrak/internal/importer"
)

// Envelope is the JSON form of an import payload, for API clients that POST
// pre-parsed rows instead of uploading a file. Column order is explicit
// because JSON objects carry none.
type Envelope struct {
	Filename string              `json:"filename"`
	Columns  []string            `json:"columns"`
	Rows     []map[string]string `json:"rows"`
}

// BuildEnvelopeSchema returns the JSON-Schema (draft 2020-12 subset) the
// envelope must satisfy, as a generic map.
func BuildEnvelopeSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"filename": map[string]any{"type": "string", "minLength": 1},
			"columns": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
			"rows": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "string"},
				},
			},
		},
		"required": []string{"columns", "rows"},
	}
}

// ParseEnvelope validates a JSON payload against the envelope schema and
// converts it to a Document. Size is checked before anything else.
func ParseEnvelope(data []byte) (*Document, error) {
	if err := CheckSize(len(data)); err != nil {
		return nil, err
	}
	if err := validateAgainstSchema(BuildEnvelopeSchema(), data); err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	doc := &Document{Headers: env.Columns}
	for i, cells := range env.Rows {
		doc.Rows = append(doc.Rows, importer.RawRow{Number: i + 1, Cells: cells})
	}
	return doc, nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
