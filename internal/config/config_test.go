package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/casepipe/core/extract"
)

const sampleYAML = `
log:
  level: debug
  format: json
fetch:
  timeout: 45s
source:
  lenient: true
classify:
  last_listed_order: lexical
labels:
  status: ["Stage", "Status"]
output:
  dir: ./out
  csv_path: cases.csv
  format: pdf
store:
  dir: ./records
metrics:
  textfile: ./casepipe.prom
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "casepipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 45*time.Second, cfg.Fetch.Timeout)
	assert.True(t, cfg.Source.Lenient)
	assert.Equal(t, "lexical", cfg.Classify.LastListedOrder)
	assert.Equal(t, []string{"Stage", "Status"}, cfg.Labels.Status)
	assert.Equal(t, extract.DefaultLabels().DiaryNumber, cfg.Labels.DiaryNumber)
	assert.Equal(t, "cases.csv", cfg.Output.CSVPath)
	assert.Equal(t, "pdf", cfg.Output.Format)
	assert.Equal(t, "./records", cfg.Store.Dir)
	assert.Equal(t, "./casepipe.prom", cfg.Metrics.Textfile)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.False(t, cfg.Source.Lenient)
	assert.Equal(t, "chronological", cfg.Classify.LastListedOrder)
	assert.Equal(t, "supreme_court_cases.csv", cfg.Output.CSVPath)
	assert.Equal(t, extract.DefaultLabels(), cfg.Labels)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CASEPIPE_CLASSIFY_LAST_LISTED_ORDER", "lexical")
	t.Setenv("CASEPIPE_STORE_DIR", "/var/lib/casepipe")

	cfg, err := Load(writeConfig(t, "log:\n  level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "lexical", cfg.Classify.LastListedOrder)
	assert.Equal(t, "/var/lib/casepipe", cfg.Store.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"level":  "log:\n  level: loud\n",
		"order":  "classify:\n  last_listed_order: alphabetical\n",
		"format": "output:\n  format: xlsx\n",
	}
	for name, yaml := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
