package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/casepipe/core"
	"github.com/gaurav-prasanna/casepipe/core/output"
	"github.com/gaurav-prasanna/casepipe/core/store"
	"github.com/gaurav-prasanna/casepipe/internal/logging"
)

var (
	flagExportStore string
	flagExportCSV   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every stored case record to a CSV spreadsheet",
	Long: `Export reads all records from the record store, in key order, and appends
them to a CSV spreadsheet with the usual header.

Examples:
  casepipe export --store ./records --csv all_cases.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&flagExportStore, "store", "", "Pebble record store directory (default from config)")
	exportCmd.Flags().StringVar(&flagExportCSV, "csv", "", "CSV to append to (default from config)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	dir := flagExportStore
	if dir == "" {
		dir = cfg.Store.Dir
	}
	if dir == "" {
		return errors.New("--store is required (or set store.dir)")
	}
	csvPath := flagExportCSV
	if csvPath == "" {
		csvPath = cfg.Output.CSVPath
	}

	s, err := store.Open(dir)
	if err != nil {
		return err
	}
	defer s.Close()

	var recs []core.CaseRecord
	if err := s.Range(func(_ string, rec core.CaseRecord) error {
		recs = append(recs, rec)
		return nil
	}); err != nil {
		return err
	}

	writer, err := output.New(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.AppendCSV(csvPath, recs...)
	if err != nil {
		return err
	}

	logger.Info("exported records", logging.Int("records", len(recs)), logging.String("csv", path))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d records to %s\n", len(recs), path)
	return nil
}
