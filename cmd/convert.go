// Package cmd, convert command.
// This is the main command that orchestrates the pipeline:
// fetch → parse → assemble → CSV row → render → store.
//
// It handles flag validation and renderer selection; batch reuses both.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flag variables shared by convert and batch.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagCSV       string
	flagOutputDir string
	flagStore     string
	flagLenient   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <url-or-file>",
	Short: "Extract the case record from one case-status page",
	Long: `Convert fetches a case-status page (or reads one saved from the browser),
extracts the case record and appends it as a row to the CSV spreadsheet.
Optionally the record is also rendered to its own file and kept in the
record store.

Examples:
  casepipe convert ./pages/12345-2020.html
  casepipe convert https://example.org/case-status?d=12345&y=2020 --json --output_dir ./out
  casepipe convert ./page.html --csv cases.csv --store ./records`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addRecordFlags(convertCmd)
}

// addRecordFlags registers the output flags on a pipeline command.
func addRecordFlags(cmd *cobra.Command) {
	// Output format flags (mutually exclusive, all optional).
	cmd.Flags().BoolVar(&flagPDF, "pdf", false, "Also render the record as PDF")
	cmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Also render the record as Markdown")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Also render the record as JSON")

	cmd.Flags().StringVar(&flagCSV, "csv", "", "Spreadsheet CSV to append to (default from config)")
	cmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&flagStore, "store", "", "Keep records in the Pebble store at this directory")
	cmd.Flags().BoolVar(&flagLenient, "lenient", false, "Process pages with missing sections instead of failing them")
}

func runConvert(cmd *cobra.Command, args []string) error {
	location := args[0]

	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg, opts, logger, reg)
	if err != nil {
		return err
	}
	defer p.Close()

	res, err := p.process(cmd.Context(), location)
	if err != nil {
		return fmt.Errorf("%s: %w", location, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Appended: %s\n", res.CSV)
	if res.File != "" {
		fmt.Fprintf(out, "✓ Written: %s\n", res.File)
	}
	return nil
}

// resolveOptions validates the flags and lays them over the loaded config.
func resolveOptions() (runOptions, error) {
	format, err := validateFlags()
	if err != nil {
		return runOptions{}, err
	}
	opts := runOptions{
		Format:    cfg.Output.Format,
		OutputDir: cfg.Output.Dir,
		CSVPath:   cfg.Output.CSVPath,
		StoreDir:  cfg.Store.Dir,
		Lenient:   cfg.Source.Lenient || flagLenient,
	}
	if format != "" {
		opts.Format = format
	}
	if flagOutputDir != "" {
		opts.OutputDir = flagOutputDir
	}
	if flagCSV != "" {
		opts.CSVPath = flagCSV
	}
	if flagStore != "" {
		opts.StoreDir = flagStore
	}
	return opts, nil
}

// validateFlags checks that at most one output format is chosen and
// returns it ("" when none is).
func validateFlags() (string, error) {
	var formats []string
	if flagPDF {
		formats = append(formats, "pdf")
	}
	if flagMarkdown {
		formats = append(formats, "markdown")
	}
	if flagJSON {
		formats = append(formats, "json")
	}

	if len(formats) > 1 {
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(formats))
	}
	if len(formats) == 0 {
		return "", nil
	}
	return formats[0], nil
}
