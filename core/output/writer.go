// Package output handles file naming and writing for casepipe outputs.
// Rendered records are named after the case key (e.g. 12345_2020.json);
// the spreadsheet CSV gains one row per processed case.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/gaurav-prasanna/casepipe/core"
)

// ErrHeaderMismatch reports an existing CSV whose header is not ours.
var ErrHeaderMismatch = errors.New("CSV header does not match record columns")

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteRecord writes one rendered record, named after rec.Key().
func (w *Writer) WriteRecord(rec core.CaseRecord, data []byte, ext string) (string, error) {
	name := sanitize(rec.Key())
	if name == "" {
		name = "case"
	}
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// AppendCSV appends records to the CSV at path, writing the header first
// when the file is new or empty. A relative path is resolved against the
// output directory.
func (w *Writer) AppendCSV(path string, recs ...core.CaseRecord) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.OutputDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return "", fmt.Errorf("opening CSV %s: %w", path, err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	switch {
	case errors.Is(err, io.EOF):
		header = nil
	case err != nil:
		return "", fmt.Errorf("reading CSV header of %s: %w", path, err)
	case !slices.Equal(header, core.Columns):
		return "", fmt.Errorf("%s: %w", path, ErrHeaderMismatch)
	}

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return "", fmt.Errorf("seeking CSV %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if header == nil {
		if err := cw.Write(core.Columns); err != nil {
			return "", fmt.Errorf("writing CSV header: %w", err)
		}
	}
	for _, rec := range recs {
		if err := cw.Write(rec.Values()); err != nil {
			return "", fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV %s: %w", path, err)
	}
	return path, nil
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	b := make([]rune, 0, len(s))
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b = append(b, ch)
		} else {
			b = append(b, '_')
		}
	}
	return string(b)
}
