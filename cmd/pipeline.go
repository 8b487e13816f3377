package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/casepipe/core"
	"github.com/gaurav-prasanna/casepipe/core/assemble"
	"github.com/gaurav-prasanna/casepipe/core/classify"
	"github.com/gaurav-prasanna/casepipe/core/fetch"
	"github.com/gaurav-prasanna/casepipe/core/output"
	"github.com/gaurav-prasanna/casepipe/core/render"
	"github.com/gaurav-prasanna/casepipe/core/source"
	"github.com/gaurav-prasanna/casepipe/core/store"
	"github.com/gaurav-prasanna/casepipe/internal/config"
	"github.com/gaurav-prasanna/casepipe/internal/logging"
	"github.com/gaurav-prasanna/casepipe/internal/metrics"
)

// runOptions are the per-run settings after flags have been laid over config.
type runOptions struct {
	Format    string
	OutputDir string
	CSVPath   string
	StoreDir  string
	Lenient   bool
}

// pipeline runs one case location through
// fetch → parse → assemble → CSV row → optional render → optional store.
type pipeline struct {
	fetcher   core.Fetcher
	source    core.Source
	assembler *assemble.Assembler
	renderer  core.Renderer    // nil: CSV row only
	store     core.RecordStore // nil: not persisted
	writer    *output.Writer
	csvPath   string
	log       logging.Logger
	metrics   *metrics.Registry
}

// caseResult lists what process produced for one case.
type caseResult struct {
	Record core.CaseRecord
	CSV    string
	File   string // rendered file, if any
}

func newPipeline(c *config.Config, opts runOptions, log logging.Logger, m *metrics.Registry) (*pipeline, error) {
	order, err := classify.ParseOrder(c.Classify.LastListedOrder)
	if err != nil {
		return nil, err
	}
	renderer, err := selectRenderer(opts.Format)
	if err != nil {
		return nil, err
	}
	writer, err := output.New(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output writer: %w", err)
	}

	p := &pipeline{
		fetcher: fetch.New(c.Fetch.Timeout, c.Fetch.UserAgent),
		source:  source.New(source.WithLenient(opts.Lenient)),
		assembler: assemble.New(
			assemble.WithLabels(c.Labels),
			assemble.WithLastListedOrder(order),
		),
		renderer: renderer,
		writer:   writer,
		csvPath:  opts.CSVPath,
		log:      log,
		metrics:  m,
	}
	if opts.StoreDir != "" {
		s, err := store.Open(opts.StoreDir)
		if err != nil {
			return nil, err
		}
		p.store = s
	}
	return p, nil
}

// Close releases the record store, if one is open.
func (p *pipeline) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

// process runs a single location through the full pipeline.
func (p *pipeline) process(ctx context.Context, location string) (caseResult, error) {
	start := time.Now()
	log := p.log.With(logging.String("location", location))

	// 1. Fetch
	fetched, err := p.fetcher.Fetch(ctx, location)
	if err != nil {
		p.metrics.Fail(metrics.StageFetch)
		return caseResult{}, fmt.Errorf("fetch: %w", err)
	}

	// 2. Parse the page sections
	page, err := p.source.Parse(fetched.HTML)
	if err != nil {
		p.metrics.Fail(metrics.StageParse)
		return caseResult{}, fmt.Errorf("parse: %w", err)
	}
	if len(page.Fields) == 0 {
		log.Warn("no case details found on page")
	}

	// 3. Assemble the record
	rec, trace := p.assembler.Assemble(*page)
	log.Debug("assembled case",
		logging.String("key", rec.Key()),
		logging.Strings("petitioner_counsel", trace.PetitionerCounsel),
		logging.Strings("respondent_counsel", trace.RespondentCounsel),
		logging.Strings("ia_filers", trace.IAFilersNorm),
		logging.Strings("hearing_dates", trace.HearingDates),
		logging.Strings("order_dates", trace.OrderDates),
		logging.String("last_listed_source", trace.LastListedSource),
	)

	// 4. Append the spreadsheet row
	res := caseResult{Record: rec}
	res.CSV, err = p.writer.AppendCSV(p.csvPath, rec)
	if err != nil {
		p.metrics.Fail(metrics.StageOutput)
		return res, err
	}

	// 5. Render the optional per-case file
	if p.renderer != nil {
		data, err := p.renderer.Render(rec)
		if err != nil {
			p.metrics.Fail(metrics.StageOutput)
			return res, fmt.Errorf("render: %w", err)
		}
		res.File, err = p.writer.WriteRecord(rec, data, p.renderer.Extension())
		if err != nil {
			p.metrics.Fail(metrics.StageOutput)
			return res, err
		}
	}

	// 6. Persist
	if p.store != nil {
		err := p.store.Put(rec)
		switch {
		case errors.Is(err, store.ErrNoKey):
			log.Warn("case has no diary, CNR or case number; not stored")
		case err != nil:
			p.metrics.Fail(metrics.StageStore)
			return res, err
		}
	}

	p.metrics.Observe(rec, time.Since(start))
	log.Info("case processed",
		logging.String("key", rec.Key()),
		logging.Int("hearings", rec.NumHearings),
		logging.Int("orders", rec.NumOrders),
		logging.Int("total_ia", rec.TotalIA),
	)
	return res, nil
}

// selectRenderer creates the Renderer for an output format; "" means none.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "":
		return nil, nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	case "csv":
		return render.NewCSVRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
