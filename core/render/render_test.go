package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/casepipe/core"
)

var sample = core.CaseRecord{
	DiaryNumber:         "12345/2020",
	CaseStatus:          "DISPOSED",
	Bench:               "HON'BLE A | HON'BLE B",
	Petitioner:          "1 RAM LAL\n2 SHYAM LAL",
	ImpleaderAdvocates:  "0",
	IntervenorAdvocates: "0",
	NumOrders:           2,
	TotalIA:             3,
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer().Render(sample)
	require.NoError(t, err)

	var got core.CaseRecord
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, string(data), `"number_of_orders": 2`)
	assert.Equal(t, ".json", NewJSONRenderer().Extension())
}

func TestMarkdownRenderer(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sample)
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "# Case 12345/2020")
	assert.Contains(t, md, `| Bench | HON'BLE A \| HON'BLE B |`)
	assert.Contains(t, md, "| Petitioner | 1 RAM LAL<br>2 SHYAM LAL |")
	assert.Contains(t, md, "| Total Number of Interim Applications | 3 |")

	empty, err := NewMarkdownRenderer().Render(core.CaseRecord{})
	require.NoError(t, err)
	assert.Contains(t, string(empty), "# Case unidentified")
}

func TestCSVRenderer(t *testing.T) {
	data, err := NewCSVRenderer().Render(sample)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, core.Columns, rows[0])
	assert.Equal(t, sample.Values(), rows[1])
}

func TestPDFRenderer(t *testing.T) {
	data, err := NewPDFRenderer().Render(sample)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, ".pdf", NewPDFRenderer().Extension())
}
