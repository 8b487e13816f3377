// Package source implements the Source interface over a saved or fetched
// case-status page. It locates the case-details, listing-dates,
// judgement/orders and interlocutory-application sections with goquery and
// hands their raw text to the core; it never interprets the values.
package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/casepipe/core"
)

// ErrSectionMissing reports that a section the record depends on is absent
// from the page. The page usually needs to be re-captured.
var ErrSectionMissing = errors.New("section missing")

// Tab names of the collapsible page sections.
const (
	tabCaseDetails  = "case_details"
	tabListingDates = "listing_dates"
)

const (
	listingDateSel  = "td[data-th='CL Date']"
	listingJudgeSel = "td[data-th='Judges']"
	orderLinkSel    = "a[href*='.pdf']"
	iaFiledBySel    = "td[data-th='Filed By'] span"
	iaHeaderText    = "INTERLOCUTARY APPLICATION"
)

// HTMLSource parses case-status pages.
type HTMLSource struct {
	lenient bool
}

// Option configures an HTMLSource.
type Option func(*HTMLSource)

// WithLenient makes missing sections yield empty inputs instead of ErrSectionMissing.
func WithLenient(lenient bool) Option {
	return func(s *HTMLSource) { s.lenient = lenient }
}

// New creates an HTMLSource. By default a missing case-details or
// listing-dates section is a hard error.
func New(opts ...Option) *HTMLSource {
	s := &HTMLSource{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse extracts the core inputs from the page HTML.
func (s *HTMLSource) Parse(html string) (*core.PageData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	if err := s.require(doc, tabCaseDetails); err != nil {
		return nil, err
	}
	if err := s.require(doc, tabListingDates); err != nil {
		return nil, err
	}

	return &core.PageData{
		Fields:   caseDetails(doc),
		Listings: listingRows(doc),
		Orders:   orderRows(doc),
		IAFilers: iaFilers(doc),
	}, nil
}

func (s *HTMLSource) require(doc *goquery.Document, tab string) error {
	if tabHeader(doc, tab).Length() > 0 || s.lenient {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSectionMissing, tab)
}

func tabHeader(doc *goquery.Document, tab string) *goquery.Selection {
	return doc.Find(fmt.Sprintf("tr[data-tab-name='%s']", tab)).First()
}

// caseDetails reads the two-cell label/value rows between the case-details
// header and the next section header.
func caseDetails(doc *goquery.Document) core.RawFieldMap {
	fields := core.RawFieldMap{}
	header := tabHeader(doc, tabCaseDetails)
	if header.Length() == 0 {
		return fields
	}

	started := false
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if !started {
			started = row.IsSelection(header)
			return true
		}
		if _, ok := row.Attr("data-tab-name"); ok {
			return false
		}
		cells := row.Find("td")
		if cells.Length() == 2 {
			fields[visibleText(cells.Eq(0))] = visibleText(cells.Eq(1))
		}
		return true
	})
	return fields
}

func listingRows(doc *goquery.Document) []core.ListingRow {
	var rows []core.ListingRow
	doc.Find(listingDateSel).Each(func(_ int, cell *goquery.Selection) {
		judges := cell.Closest("tr").Find(listingJudgeSel).First()
		rows = append(rows, core.ListingRow{
			Date:      spanText(cell),
			BenchText: spanText(judges),
		})
	})
	return rows
}

// orderRows returns every row of the tables that carry order PDFs,
// flattened to visible text. Layout rows wrapping a nested table are skipped.
func orderRows(doc *goquery.Document) []core.OrderRow {
	var rows []core.OrderRow
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("table").Length() > 0 {
			return
		}
		if row.Closest("table").Find(orderLinkSel).Length() == 0 {
			return
		}
		if text := rowText(row); text != "" {
			rows = append(rows, core.OrderRow{Text: text})
		}
	})
	return rows
}

// iaFilers returns the "Filed By" names of the table following the
// interlocutory-application header row.
func iaFilers(doc *goquery.Document) []string {
	var names []string
	doc.Find("tr").FilterFunction(func(_ int, row *goquery.Selection) bool {
		return strings.Contains(row.ChildrenFiltered("td").ChildrenFiltered("strong").Text(), iaHeaderText)
	}).Each(func(_ int, header *goquery.Selection) {
		header.Next().Find(iaFiledBySel).Each(func(_ int, span *goquery.Selection) {
			names = append(names, strings.TrimSpace(span.Text()))
		})
	})
	return names
}

// rowText flattens a table row to its visible text, one cell at a time so
// adjacent cells stay separated.
func rowText(row *goquery.Selection) string {
	cells := row.ChildrenFiltered("td, th")
	if cells.Length() == 0 {
		return collapse(row.Text())
	}
	parts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		if text := cellText(cell); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// textConverter renders cell HTML as plain text: links, images and
// emphasis contribute only what a reader sees, never hrefs or markers.
var textConverter = newTextConverter()

func newTextConverter() *converter.Converter {
	conv := converter.NewConverter(
		converter.WithEscapeMode(converter.EscapeModeDisabled),
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	for _, tag := range []string{"a", "strong", "b", "em", "i", "code"} {
		conv.Register.RendererFor(tag, converter.TagTypeInline, renderChildren, converter.PriorityEarly)
	}
	conv.Register.RendererFor("img", converter.TagTypeInline, renderNothing, converter.PriorityEarly)
	return conv
}

func renderChildren(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	ctx.RenderChildNodes(ctx, w, n)
	return converter.RenderSuccess
}

func renderNothing(converter.Context, converter.Writer, *html.Node) converter.RenderStatus {
	return converter.RenderSuccess
}

func cellText(cell *goquery.Selection) string {
	inner, err := cell.Html()
	if err != nil {
		return visibleText(cell)
	}
	text, err := textConverter.ConvertString(inner)
	if err != nil {
		return visibleText(cell)
	}
	return collapse(text)
}

// spanText prefers the cell's span, where the page puts the value.
func spanText(cell *goquery.Selection) string {
	if span := cell.Find("span").First(); span.Length() > 0 {
		return visibleText(span)
	}
	return visibleText(cell)
}

// visibleText approximates rendered text: line breaks kept, runs of spaces
// collapsed, blank lines dropped.
func visibleText(sel *goquery.Selection) string {
	sel = sel.Clone()
	sel.Find("br").ReplaceWithHtml("\n")
	var lines []string
	for _, line := range strings.Split(sel.Text(), "\n") {
		if line = collapse(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
