package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/casepipe/core"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteRecord(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	path, err := w.WriteRecord(core.CaseRecord{DiaryNumber: "12345/2020"}, []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "12345_2020.json"), path)

	path, err = w.WriteRecord(core.CaseRecord{}, []byte("{}"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "case.md"), path)
}

func TestAppendCSV(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	first := core.CaseRecord{DiaryNumber: "1/2020", ImpleaderAdvocates: "0"}
	second := core.CaseRecord{DiaryNumber: "2/2020", Petitioner: "A, B\nC", NumOrders: 4}

	path, err := w.AppendCSV("cases.csv", first)
	require.NoError(t, err)
	_, err = w.AppendCSV(path, second)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, core.Columns, rows[0])
	assert.Equal(t, first.Values(), rows[1])
	assert.Equal(t, second.Values(), rows[2])
}

func TestAppendCSV_EmptyFileGetsHeader(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(w.OutputDir, "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err = w.AppendCSV(path, core.CaseRecord{DiaryNumber: "1/2020"})
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, core.Columns, rows[0])
}

func TestAppendCSV_ForeignHeader(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(w.OutputDir, "other.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0644))

	_, err = w.AppendCSV(path, core.CaseRecord{})
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "C_A__No__1_2020", sanitize("C.A. No. 1/2020"))
	assert.Equal(t, "", sanitize(""))
}
