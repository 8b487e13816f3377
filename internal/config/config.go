// Package config loads casepipe settings from an optional YAML file and
// CASEPIPE_* environment variables using viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/casepipe/core/classify"
	"github.com/gaurav-prasanna/casepipe/core/extract"
	"github.com/gaurav-prasanna/casepipe/internal/logging"
)

// envPrefix is the environment variable prefix for every setting.
const envPrefix = "CASEPIPE"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full casepipe configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Source   SourceConfig   `mapstructure:"source"`
	Classify ClassifyConfig `mapstructure:"classify"`
	Labels   extract.Labels `mapstructure:"labels"`
	Output   OutputConfig   `mapstructure:"output"`
	Store    StoreConfig    `mapstructure:"store"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// FetchConfig controls page acquisition over HTTP.
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// SourceConfig controls page parsing.
type SourceConfig struct {
	// Lenient processes pages with missing sections instead of failing them.
	Lenient bool `mapstructure:"lenient"`
}

// ClassifyConfig controls date resolution.
type ClassifyConfig struct {
	// LastListedOrder is "chronological" or "lexical".
	LastListedOrder string `mapstructure:"last_listed_order"`
}

// OutputConfig controls where records are written.
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	CSVPath string `mapstructure:"csv_path"`
	// Format is an optional per-case file: "", json, markdown, pdf or csv.
	Format string `mapstructure:"format"`
}

// StoreConfig enables the Pebble record store when Dir is set.
type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

// MetricsConfig enables the prometheus textfile when Textfile is set.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// Formats are the accepted Output.Format values.
var Formats = []string{"json", "markdown", "pdf", "csv"}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key, which also lets AutomaticEnv resolve
// CASEPIPE_* variables for keys absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.user_agent", "")
	v.SetDefault("source.lenient", false)
	v.SetDefault("classify.last_listed_order", string(classify.Chronological))
	v.SetDefault("output.dir", "")
	v.SetDefault("output.csv_path", "supreme_court_cases.csv")
	v.SetDefault("output.format", "")
	v.SetDefault("store.dir", "")
	v.SetDefault("metrics.textfile", "")
}

// Load reads the YAML file at path when path is non-empty, applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	cfg.Labels = cfg.Labels.Merge(extract.DefaultLabels())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if _, err := classify.ParseOrder(c.Classify.LastListedOrder); err != nil {
		return fmt.Errorf("%w: classify.last_listed_order: %v", ErrInvalid, err)
	}
	if c.Output.Format != "" && !contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want one of %s)", ErrInvalid, c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("%w: fetch.timeout must not be negative", ErrInvalid)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
