// Package classify implements the hearing/order classifier and the date
// resolution rules that work over listing and order rows.
package classify

import (
	"regexp"
	"time"

	"github.com/gaurav-prasanna/casepipe/core"
)

// DateLayout is the dd-mm-yyyy layout used throughout the case page.
const DateLayout = "02-01-2006"

var (
	dateRegex     = regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`)
	ropRegex      = regexp.MustCompile(`(?i)\bROP\b`)
	judgmentRegex = regexp.MustCompile(`(?i)judge?ment`)
)

// Counts is the result of classifying the order rows of one case.
// HearingDates and OrderDates list distinct dates in order of first appearance.
type Counts struct {
	Hearings     int
	Orders       int
	HearingDates []string
	OrderDates   []string
}

// Orders classifies each row by its first dd-mm-yyyy date. Rows mentioning
// ROP count toward hearings, rows mentioning a judgment toward orders; a row
// may count toward both. Rows without a date are skipped. Counts are of
// distinct dates, not rows.
func Orders(rows []core.OrderRow) Counts {
	hearings := newDateSet()
	orders := newDateSet()

	for _, row := range rows {
		date := dateRegex.FindString(row.Text)
		if date == "" {
			continue
		}
		if ropRegex.MatchString(row.Text) {
			hearings.add(date)
		}
		if judgmentRegex.MatchString(row.Text) {
			orders.add(date)
		}
	}

	return Counts{
		Hearings:     len(hearings.items),
		Orders:       len(orders.items),
		HearingDates: hearings.items,
		OrderDates:   orders.items,
	}
}

// EarliestDate returns the chronologically earliest dd-mm-yyyy date found
// anywhere in rows, formatted as dd-mm-yyyy. Fragments that look like dates
// but do not parse (e.g. 31-02-2020) are ignored.
func EarliestDate(rows []core.OrderRow) string {
	var earliest time.Time
	found := false
	for _, row := range rows {
		for _, s := range dateRegex.FindAllString(row.Text, -1) {
			t, err := time.Parse(DateLayout, s)
			if err != nil {
				continue
			}
			if !found || t.Before(earliest) {
				earliest, found = t, true
			}
		}
	}
	if !found {
		return ""
	}
	return earliest.Format(DateLayout)
}

// dateSet keeps distinct date strings in insertion order.
type dateSet struct {
	seen  map[string]bool
	items []string
}

func newDateSet() *dateSet {
	return &dateSet{seen: make(map[string]bool), items: []string{}}
}

func (s *dateSet) add(d string) {
	if s.seen[d] {
		return
	}
	s.seen[d] = true
	s.items = append(s.items, d)
}
