package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/casepipe/batch"
	"github.com/gaurav-prasanna/casepipe/internal/logging"
)

var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Extract case records from every page listed in a file",
	Long: `Batch reads one URL or file path per line (blank lines and lines starting
with # are skipped), drops duplicates and runs each case through the same
pipeline as convert. A failing case is reported and skipped.

Examples:
  casepipe batch cases.txt
  casepipe batch cases.txt --store ./records --metrics-file casepipe.prom`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addRecordFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening list: %w", err)
	}
	queue, dups, err := batch.ReadList(f)
	f.Close()
	if err != nil {
		return err
	}
	if dups > 0 {
		logger.Info("dropped duplicate locations", logging.Int("duplicates", dups))
	}

	opts, err := resolveOptions()
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg, opts, logger, reg)
	if err != nil {
		return err
	}
	defer p.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	total := queue.Len()
	fmt.Fprintf(out, "Processing %d cases\n", total)

	var errCount, i int
	for queue.HasNext() {
		if err := ctx.Err(); err != nil {
			return err
		}
		location := queue.Next()
		i++
		fmt.Fprintf(out, "[%d/%d] Processing %s\n", i, total, location)

		res, err := p.process(ctx, location)
		if err != nil {
			logger.Error("case failed", logging.String("location", location), logging.Err(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ Error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(out, "  ✓ %s\n", res.Record.Key())
	}

	if errCount > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d/%d cases failed\n", errCount, total)
	}
	return nil
}
