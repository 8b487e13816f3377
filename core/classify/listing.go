// Package classify, last-listed date and bench resolution.
package classify

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gaurav-prasanna/casepipe/core"
	"github.com/gaurav-prasanna/casepipe/core/extract"
)

// Order selects how the listing-row fallback picks the latest date.
type Order string

const (
	// Chronological compares listing dates as calendar dates.
	Chronological Order = "chronological"
	// Lexical compares raw dd-mm-yyyy strings, matching the legacy
	// spreadsheet output (wrong across month and year boundaries).
	Lexical Order = "lexical"
)

// ParseOrder validates a configured ordering name. Empty means Chronological.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", Chronological:
		return Chronological, nil
	case Lexical:
		return Lexical, nil
	default:
		return "", fmt.Errorf("unknown last-listed order %q (want %q or %q)", s, Chronological, Lexical)
	}
}

// Source records where a last-listed date came from.
const (
	SourceField    = "field"
	SourceListings = "listings"
)

var leadingDateRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)

// LastListed is the resolved last-listed date and the bench that sat on it.
type LastListed struct {
	Date   string
	Bench  string
	Source string
}

// ResolveLastListed prefers the "Present/Last Listed On" field text, whose
// leading dd-mm-yyyy prefix is the date and whose bracketed part is the bench.
// Without a usable field it falls back to the latest listing-row date under
// order, taking the bench from the first row listed on that date.
func ResolveLastListed(fieldText string, rows []core.ListingRow, order Order) LastListed {
	fieldText = strings.TrimSpace(fieldText)
	if date := leadingDateRegex.FindString(fieldText); date != "" {
		bench := extract.Bench(fieldText)
		if bench == "" {
			bench = benchOn(rows, date)
		}
		return LastListed{Date: date, Bench: bench, Source: SourceField}
	}

	date := LatestListingDate(rows, order)
	if date == "" {
		return LastListed{}
	}
	return LastListed{Date: date, Bench: benchOn(rows, date), Source: SourceListings}
}

// LatestListingDate returns the maximum listing-row date under order.
// Chronological ignores dates that do not parse; Lexical keeps every
// non-empty value.
func LatestListingDate(rows []core.ListingRow, order Order) string {
	var latest string
	var latestTime time.Time
	for _, row := range rows {
		d := strings.TrimSpace(row.Date)
		if d == "" {
			continue
		}
		if order == Lexical {
			if d > latest {
				latest = d
			}
			continue
		}
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			continue
		}
		if latest == "" || t.After(latestTime) {
			latest, latestTime = d, t
		}
	}
	return latest
}

// benchOn returns the bench of the first listing row dated date. A bracketed
// judges cell yields its bracket contents, anything else its trimmed text.
func benchOn(rows []core.ListingRow, date string) string {
	for _, row := range rows {
		if strings.TrimSpace(row.Date) != date {
			continue
		}
		if b := extract.Bench(row.BenchText); b != "" {
			return b
		}
		return strings.TrimSpace(row.BenchText)
	}
	return ""
}
