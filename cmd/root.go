// Package cmd implements the CLI commands for casepipe using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/casepipe/internal/config"
	"github.com/gaurav-prasanna/casepipe/internal/logging"
	"github.com/gaurav-prasanna/casepipe/internal/metrics"
)

// Global flag variables.
var (
	flagConfig      string
	flagLogLevel    string
	flagMetricsFile string
)

// Process-wide state set up by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger logging.Logger = logging.NewNop()
	reg    *metrics.Registry
)

var rootCmd = &cobra.Command{
	Use:   "casepipe",
	Short: "casepipe: turn court case-status pages into flat case records",
	Long: `casepipe extracts one flat record per case from a court case-status page:
parties, counsel, bench, hearing and order counts, listing dates and
interlocutory applications. Records are appended to a CSV spreadsheet and
can additionally be rendered as JSON, Markdown or PDF, or kept in a local
record store.

Usage:
  casepipe convert <url-or-file> [flags]
  casepipe batch <list-file> [flags]
  casepipe export --store <dir> [flags]`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (env: CASEPIPE_*)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&flagMetricsFile, "metrics-file", "", "Write prometheus metrics to this textfile on exit")
}

// setup loads configuration and builds the logger and metrics registry.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagMetricsFile != "" {
		loaded.Metrics.Textfile = flagMetricsFile
	}

	l, err := logging.New(loaded.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	cfg = loaded
	logger = l.With(logging.String("command", cmd.Name()))
	reg = metrics.NewRegistry()
	return nil
}

// flush writes the metrics textfile and syncs the logger. It runs after
// every command, failed ones included.
func flush() {
	if cfg != nil && reg != nil && cfg.Metrics.Textfile != "" {
		if err := reg.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("writing metrics textfile failed",
				logging.String("path", cfg.Metrics.Textfile), logging.Err(err))
		}
	}
	_ = logger.Sync()
}

// execute runs the command tree and flushes whatever setup created.
func execute(ctx context.Context) error {
	cfg, reg = nil, nil
	err := rootCmd.ExecuteContext(ctx)
	flush()
	return err
}

// Execute runs the root command. An interrupt cancels the running case.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := execute(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
