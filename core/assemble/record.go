// Package assemble combines the extractor, classifier and attributor
// outputs into one CaseRecord.
package assemble

import (
	"strings"

	"github.com/gaurav-prasanna/casepipe/core"
	"github.com/gaurav-prasanna/casepipe/core/classify"
	"github.com/gaurav-prasanna/casepipe/core/extract"
	"github.com/gaurav-prasanna/casepipe/core/ia"
	"github.com/gaurav-prasanna/casepipe/core/normalize"
)

const (
	// disposedStatus is the only case status that carries a decision date.
	disposedStatus = "DISPOSED"
	// absentAdvocates stands in for missing impleader/intervenor counsel.
	absentAdvocates = "0"
)

// Assembler builds CaseRecords. The zero value is not usable; use New.
type Assembler struct {
	labels   extract.Labels
	order    classify.Order
	tieBreak ia.TieBreak
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLabels replaces the label synonyms; empty lists keep the defaults.
func WithLabels(l extract.Labels) Option {
	return func(a *Assembler) { a.labels = l.Merge(extract.DefaultLabels()) }
}

// WithLastListedOrder selects the listing-row fallback ordering.
func WithLastListedOrder(o classify.Order) Option {
	return func(a *Assembler) { a.order = o }
}

// WithTieBreak replaces the IA tie-break rule.
func WithTieBreak(rule ia.TieBreak) Option {
	return func(a *Assembler) { a.tieBreak = rule }
}

// New creates an Assembler with default labels, chronological last-listed
// ordering and the PetitionerFirst tie-break.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		labels:   extract.DefaultLabels(),
		order:    classify.Chronological,
		tieBreak: ia.PetitionerFirst,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble turns one case's page data into its record. It accepts partially
// empty input and always returns a fully populated record.
func (a *Assembler) Assemble(page core.PageData) (core.CaseRecord, core.Trace) {
	field := func(keys []string) string {
		return extract.FirstMatching(page.Fields, keys)
	}

	rawDiary := field(a.labels.DiaryNumber)
	rawCaseNo := field(a.labels.CaseNumber)
	status := extract.CaseStatus(field(a.labels.Status))

	last := classify.ResolveLastListed(field(a.labels.LastListed), page.Listings, a.order)
	counts := classify.Orders(page.Orders)

	petCounsel := normalize.SplitNames(field(a.labels.PetitionerAdvocates))
	respCounsel := normalize.SplitNames(field(a.labels.RespondentAdvocates))
	filed := ia.Attribute(page.IAFilers, petCounsel, respCounsel, a.tieBreak)

	decision := ""
	if status == disposedStatus {
		decision = last.Date
	}

	rec := core.CaseRecord{
		DiaryNumber:              extract.DiaryNumber(rawDiary),
		CaseNumber:               extract.CaseNumber(rawCaseNo),
		CaseType:                 extract.CaseType(rawCaseNo),
		FilingDate:               extract.FilingDate(rawDiary),
		RegistrationDate:         extract.RegistrationDate(rawCaseNo),
		CaseStatus:               status,
		NatureOfDisposal:         field(a.labels.DisposalType),
		CNRNumber:                field(a.labels.CNRNumber),
		DecisionDate:             decision,
		Bench:                    last.Bench,
		FirstJudgeName:           extract.FirstJudge(last.Bench),
		Petitioner:               field(a.labels.Petitioner),
		Respondent:               field(a.labels.Respondent),
		PetitionerRepresentative: strings.Join(petCounsel, ", "),
		RespondentRepresentative: strings.Join(respCounsel, ", "),
		ImpleaderAdvocates:       orDefault(field(a.labels.ImpleaderAdvocates), absentAdvocates),
		IntervenorAdvocates:      orDefault(field(a.labels.IntervenorAdvocates), absentAdvocates),
		FirstHearingDate:         classify.EarliestDate(page.Orders),
		LastListedOn:             last.Date,
		NumHearings:              counts.Hearings,
		NumOrders:                counts.Orders,
		NumIAPetitioner:          filed.Petitioner,
		NumIARespondent:          filed.Respondent,
		NumIAInterlocuter:        filed.Interlocuter,
		TotalIA:                  filed.Total,
	}

	trace := core.Trace{
		PetitionerCounsel: petCounsel,
		RespondentCounsel: respCounsel,
		IAFilersNorm:      filed.Normalized,
		HearingDates:      counts.HearingDates,
		OrderDates:        counts.OrderDates,
		LastListedSource:  last.Source,
	}
	return rec, trace
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
