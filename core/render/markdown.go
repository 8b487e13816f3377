// Package render provides output renderers for a CaseRecord.
// This file implements the Markdown renderer: a two-column field table.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/casepipe/core"
)

// MarkdownRenderer writes the record as a Markdown table.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown table.
func (r *MarkdownRenderer) Render(rec core.CaseRecord) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Case %s\n\n", title(rec))
	b.WriteString("| Field | Value |\n|---|---|\n")
	for i, v := range rec.Values() {
		fmt.Fprintf(&b, "| %s | %s |\n", core.Columns[i], escapeCell(v))
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func escapeCell(v string) string {
	v = strings.ReplaceAll(v, "|", `\|`)
	return strings.ReplaceAll(v, "\n", "<br>")
}

// title names a record by its key, or "unidentified".
func title(rec core.CaseRecord) string {
	if k := rec.Key(); k != "" {
		return k
	}
	return "unidentified"
}
