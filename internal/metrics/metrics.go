// Package metrics counts pipeline outcomes in a private prometheus registry
// that can be flushed to a node-exporter textfile at the end of a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gaurav-prasanna/casepipe/core"
	"github.com/gaurav-prasanna/casepipe/core/ia"
)

// Registry holds the casepipe collectors in a private prometheus registry.
type Registry struct {
	reg          *prometheus.Registry
	Processed    prometheus.Counter
	Failed       *prometheus.CounterVec
	IAFilers     *prometheus.CounterVec
	Hearings     prometheus.Counter
	Orders       prometheus.Counter
	CaseDuration prometheus.Histogram
}

// Failure stages used as the "stage" label of casepipe_cases_failed_total.
const (
	StageFetch  = "fetch"
	StageParse  = "parse"
	StageOutput = "output"
	StageStore  = "store"
)

// NewRegistry creates and registers every casepipe collector.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	processed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "casepipe_cases_processed_total",
		Help: "Case records assembled and written.",
	})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casepipe_cases_failed_total",
		Help: "Cases abandoned, by pipeline stage.",
	}, []string{"stage"})
	iaFilers := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casepipe_ia_filers_total",
		Help: "Interlocutory application filers, by attributed party.",
	}, []string{"bucket"})
	hearings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "casepipe_hearing_dates_total",
		Help: "Distinct hearing dates counted across cases.",
	})
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "casepipe_order_dates_total",
		Help: "Distinct order dates counted across cases.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "casepipe_case_duration_seconds",
		Help:    "Wall time from fetch to written record.",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(processed, failed, iaFilers, hearings, orders, duration)
	return &Registry{
		reg:          r,
		Processed:    processed,
		Failed:       failed,
		IAFilers:     iaFilers,
		Hearings:     hearings,
		Orders:       orders,
		CaseDuration: duration,
	}
}

// Observe records one successfully assembled case.
func (r *Registry) Observe(rec core.CaseRecord, took time.Duration) {
	r.Processed.Inc()
	r.IAFilers.WithLabelValues(ia.Petitioner.String()).Add(float64(rec.NumIAPetitioner))
	r.IAFilers.WithLabelValues(ia.Respondent.String()).Add(float64(rec.NumIARespondent))
	r.IAFilers.WithLabelValues(ia.Interlocuter.String()).Add(float64(rec.NumIAInterlocuter))
	r.Hearings.Add(float64(rec.NumHearings))
	r.Orders.Add(float64(rec.NumOrders))
	r.CaseDuration.Observe(took.Seconds())
}

// Fail records a case abandoned at stage.
func (r *Registry) Fail(stage string) {
	r.Failed.WithLabelValues(stage).Inc()
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
