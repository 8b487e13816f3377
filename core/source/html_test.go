package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/casepipe/core"
	"github.com/gaurav-prasanna/casepipe/core/assemble"
)

const casePage = `<!DOCTYPE html>
<html lang="en"><body>
<table class="case-status">
  <tr data-tab-name="case_details"><td colspan="2"><button>Case Details</button></td></tr>
  <tr><td>Diary Number</td><td>12345/2020 Filed on 03-02-2020</td></tr>
  <tr><td>Case Number</td><td>C.A. No. 001234/2021   Registered on 15-03-2021</td></tr>
  <tr><td>CNR Number</td><td>SCIN010012342021</td></tr>
  <tr><td>Present/Last Listed On</td><td>24-07-2023 [HON'BLE MR. JUSTICE SHARMA, HON'BLE MR. JUSTICE GUPTA]</td></tr>
  <tr><td>Status/Stage</td><td><font color="red">DISPOSED</font> Judgment dated 24-07-2023</td></tr>
  <tr><td>Petitioner(s)</td><td>1 RAM LAL<br>2 SHYAM LAL</td></tr>
  <tr><td>Petitioner Advocate(s)</td><td>Mr. Anil Kumar [AOR], Ms. Priya Rao</td></tr>
  <tr><td>Respondent Advocate(s)</td><td>S. N. Gupta (AOR)</td></tr>
  <tr><td>A single cell row</td></tr>
  <tr data-tab-name="listing_dates"><td colspan="2"><button>Listing Dates</button></td></tr>
  <tr><td colspan="2">
    <table>
      <tr><td data-th="CL Date"><span>31-12-2022</span></td><td data-th="Judges"><span>HON'BLE A</span></td></tr>
      <tr><td data-th="CL Date"><span>01-01-2023</span></td><td data-th="Judges">HON'BLE B</td></tr>
    </table>
  </td></tr>
  <tr data-tab-name="judgement_orders"><td><button>Judgement/Orders</button></td></tr>
</table>

<table id="orders">
  <tr><th>Sr.</th><th>Date</th><th>Document</th></tr>
  <tr><td>1</td><td>10-05-2021</td><td><a href="/files/rop1.pdf">ROP</a></td></tr>
  <tr><td>2</td><td>10-05-2021</td><td><a href="/files/rop2.pdf">ROP</a></td></tr>
  <tr><td>3</td><td>24-07-2023</td><td><a href="/files/j.pdf">Judgment</a></td></tr>
</table>

<table>
  <tr><td><strong>INTERLOCUTARY APPLICATION(s)</strong></td></tr>
  <tr><td>
    <table>
      <tr><td data-th="IA Number"><span>IA 1/2021</span></td><td data-th="Filed By"><span> ANIL KUMAR </span></td></tr>
      <tr><td data-th="IA Number"><span>IA 2/2021</span></td><td data-th="Filed By"><span>Third Party</span></td></tr>
    </table>
  </td></tr>
</table>
</body></html>`

func TestParse(t *testing.T) {
	page, err := New().Parse(casePage)
	require.NoError(t, err)

	assert.Equal(t, "12345/2020 Filed on 03-02-2020", page.Fields["Diary Number"])
	assert.Equal(t, "C.A. No. 001234/2021 Registered on 15-03-2021", page.Fields["Case Number"])
	assert.Equal(t, "DISPOSED Judgment dated 24-07-2023", page.Fields["Status/Stage"])
	assert.Equal(t, "1 RAM LAL\n2 SHYAM LAL", page.Fields["Petitioner(s)"])
	assert.NotContains(t, page.Fields, "A single cell row")
	assert.Len(t, page.Fields, 8)

	assert.Equal(t, []core.ListingRow{
		{Date: "31-12-2022", BenchText: "HON'BLE A"},
		{Date: "01-01-2023", BenchText: "HON'BLE B"},
	}, page.Listings)

	require.Len(t, page.Orders, 4)
	assert.Equal(t, "1 10-05-2021 ROP", page.Orders[1].Text)
	assert.Contains(t, page.Orders[3].Text, "Judgment")

	assert.Equal(t, []string{"ANIL KUMAR", "Third Party"}, page.IAFilers)
}

func TestParse_Assembled(t *testing.T) {
	page, err := New().Parse(casePage)
	require.NoError(t, err)

	rec, _ := assemble.New().Assemble(*page)

	assert.Equal(t, "12345/2020", rec.DiaryNumber)
	assert.Equal(t, "C.A.", rec.CaseType)
	assert.Equal(t, "24-07-2023", rec.DecisionDate)
	assert.Equal(t, "HON'BLE MR. JUSTICE SHARMA", rec.FirstJudgeName)
	assert.Equal(t, "ANIL KUMAR, PRIYA RAO", rec.PetitionerRepresentative)
	assert.Equal(t, "10-05-2021", rec.FirstHearingDate)
	assert.Equal(t, 1, rec.NumHearings)
	assert.Equal(t, 1, rec.NumOrders)
	assert.Equal(t, 1, rec.NumIAPetitioner)
	assert.Equal(t, 1, rec.NumIAInterlocuter)
	assert.Equal(t, 2, rec.TotalIA)
}

func TestParse_OrderRowsExcludeLinkTargets(t *testing.T) {
	html := `<table>
  <tr data-tab-name="case_details"><td colspan="2">Case Details</td></tr>
  <tr><td>Diary Number</td><td>1/2021</td></tr>
  <tr data-tab-name="listing_dates"><td colspan="2">Listing Dates</td></tr>
</table>
<table>
  <tr><td>1</td><td>10-05-2021</td><td><a href="/judgment/01-01-2001/rop.pdf">ROP</a></td></tr>
  <tr><td>2</td><td><b>12-06-2021</b></td><td><a href="/files/Order_Judgement_02-02-2002.pdf"><img src="/icons/judgment_03-03-2003.png" alt="pdf"> ROP</a></td></tr>
</table>`

	page, err := New().Parse(html)
	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, "1 10-05-2021 ROP", page.Orders[0].Text)
	assert.Equal(t, "2 12-06-2021 ROP", page.Orders[1].Text)

	rec, _ := assemble.New().Assemble(*page)
	assert.Equal(t, 0, rec.NumOrders)
	assert.Equal(t, 2, rec.NumHearings)
	assert.Equal(t, "10-05-2021", rec.FirstHearingDate)
}

func TestParse_MissingSections(t *testing.T) {
	noListing := `<table><tr data-tab-name="case_details"><td>x</td></tr>
<tr><td>Diary Number</td><td>1/2020</td></tr></table>`

	_, err := New().Parse("<html><body><p>Please enter the captcha</p></body></html>")
	assert.ErrorIs(t, err, ErrSectionMissing)
	assert.ErrorContains(t, err, "case_details")

	_, err = New().Parse(noListing)
	assert.ErrorIs(t, err, ErrSectionMissing)
	assert.ErrorContains(t, err, "listing_dates")

	page, err := New(WithLenient(true)).Parse(noListing)
	require.NoError(t, err)
	assert.Equal(t, "1/2020", page.Fields["Diary Number"])
	assert.Empty(t, page.Listings)
	assert.Empty(t, page.Orders)
	assert.Empty(t, page.IAFilers)
}
