// Package render, JSON renderer.
// Emits the CaseRecord with its snake_case field names.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/casepipe/core"
)

// JSONRenderer produces indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the record.
func (r *JSONRenderer) Render(rec core.CaseRecord) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
