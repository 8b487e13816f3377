// Package core defines the case-record pipeline types and interfaces for casepipe.
// Each stage of the pipeline is a clean, testable interface; the extraction
// stages themselves are pure functions in the sub-packages.
package core

import "context"

// FetchResult holds the raw HTML of a case-status page and where it came from.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// RawFieldMap maps a case-details label, exactly as rendered, to its value.
type RawFieldMap map[string]string

// ListingRow is one row of the listing-dates table.
type ListingRow struct {
	Date      string `json:"date"` // dd-mm-yyyy as rendered
	BenchText string `json:"bench_text"`
}

// OrderRow is one row of the judgement/orders table, flattened to its visible text.
type OrderRow struct {
	Text string `json:"text"`
}

// PageData is everything the page-acquisition side hands to the core for one case.
type PageData struct {
	Fields   RawFieldMap  `json:"fields"`
	Listings []ListingRow `json:"listings"`
	Orders   []OrderRow   `json:"orders"`
	IAFilers []string     `json:"ia_filers"`
}

// CaseRecord is the flat, always fully populated output record for one case.
type CaseRecord struct {
	DiaryNumber              string `json:"diary_number"`
	CaseNumber               string `json:"case_number"`
	CaseType                 string `json:"case_type"`
	FilingDate               string `json:"filing_date"`
	RegistrationDate         string `json:"registration_date"`
	CaseStatus               string `json:"case_status"`
	NatureOfDisposal         string `json:"nature_of_disposal"`
	CNRNumber                string `json:"cnr_number"`
	DecisionDate             string `json:"decision_date"`
	Bench                    string `json:"bench"`
	FirstJudgeName           string `json:"first_judge_name"`
	Petitioner               string `json:"petitioner"`
	Respondent               string `json:"respondent"`
	PetitionerRepresentative string `json:"petitioner_legal_representative"`
	RespondentRepresentative string `json:"respondent_legal_representative"`
	ImpleaderAdvocates       string `json:"impleader_advocates"`
	IntervenorAdvocates      string `json:"intervenor_advocates"`
	FirstHearingDate         string `json:"first_hearing_date"`
	LastListedOn             string `json:"last_listed_on"`
	NumHearings              int    `json:"number_of_hearings"`
	NumOrders                int    `json:"number_of_orders"`
	NumIAPetitioner          int    `json:"ia_by_petitioner"`
	NumIARespondent          int    `json:"ia_by_defendant"`
	NumIAInterlocuter        int    `json:"ia_by_interlocuters"`
	TotalIA                  int    `json:"total_ia"`
}

// Trace carries the intermediate values behind a CaseRecord so callers can
// log them. It never influences the record.
type Trace struct {
	PetitionerCounsel []string `json:"petitioner_counsel"`
	RespondentCounsel []string `json:"respondent_counsel"`
	IAFilersNorm      []string `json:"ia_filers_normalized"`
	HearingDates      []string `json:"hearing_dates"`
	OrderDates        []string `json:"order_dates"`
	LastListedSource  string   `json:"last_listed_source"` // "field", "listings" or ""
}

// Fetcher retrieves the raw HTML of a case page.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (*FetchResult, error)
}

// Source turns raw case-page HTML into the core's inputs.
type Source interface {
	Parse(html string) (*PageData, error)
}

// Renderer converts a CaseRecord into a final output format.
type Renderer interface {
	Render(rec CaseRecord) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// RecordStore persists CaseRecords between runs.
type RecordStore interface {
	Put(rec CaseRecord) error
	Get(key string) (CaseRecord, error)
	Range(fn func(key string, rec CaseRecord) error) error
	Close() error
}
