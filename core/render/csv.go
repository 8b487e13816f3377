// Package render, CSV renderer.
// A header line plus one data row, in spreadsheet column order.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gaurav-prasanna/casepipe/core"
)

// CSVRenderer produces a single-row CSV document.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Render writes the header and the record's row.
func (r *CSVRenderer) Render(rec core.CaseRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll([][]string{core.Columns, rec.Values()}); err != nil {
		return nil, fmt.Errorf("writing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for CSV output.
func (r *CSVRenderer) Extension() string {
	return ".csv"
}
