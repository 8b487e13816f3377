// Package render, PDF renderer.
// Lays the record out as a single-page labelled summary using gofpdf.
package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/casepipe/core"
)

// PDFRenderer renders a CaseRecord as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the record into PDF bytes.
func (r *PDFRenderer) Render(rec core.CaseRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Core fonts are cp1252; names on the page are UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr("Case "+title(rec)), "", "L", false)
	pdf.Ln(4)

	const labelWidth = 70
	for i, v := range rec.Values() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(labelWidth, 5, tr(core.Columns[i]), "", 0, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		if v == "" {
			v = "-"
		}
		pdf.MultiCell(0, 5, tr(strings.ReplaceAll(v, "\n", "; ")), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
