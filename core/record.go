package core

import "strconv"

// Columns are the spreadsheet column names of a CaseRecord, in output order.
var Columns = []string{
	"Diary Number",
	"Case Number",
	"Case Type",
	"Filing Date",
	"Registration Date",
	"Case Status",
	"Nature of Disposal",
	"CNR Number",
	"Decision Date",
	"Bench",
	"First Judge Name",
	"Petitioner",
	"Respondent",
	"Petitioner Legal Representative",
	"Respondent Legal Representative",
	"Impleader Advocate(s)",
	"Intervenor Advocate(s)",
	"First Hearing Date",
	"Last Listed On",
	"Number of Hearings",
	"Number of Orders",
	"Number of Interim Applications by Petitioner",
	"Number of Interim Applications by Defendant",
	"Number of Interim Applications by Interlocuters",
	"Total Number of Interim Applications",
}

// Values returns the record's cells in Columns order.
func (r CaseRecord) Values() []string {
	return []string{
		r.DiaryNumber,
		r.CaseNumber,
		r.CaseType,
		r.FilingDate,
		r.RegistrationDate,
		r.CaseStatus,
		r.NatureOfDisposal,
		r.CNRNumber,
		r.DecisionDate,
		r.Bench,
		r.FirstJudgeName,
		r.Petitioner,
		r.Respondent,
		r.PetitionerRepresentative,
		r.RespondentRepresentative,
		r.ImpleaderAdvocates,
		r.IntervenorAdvocates,
		r.FirstHearingDate,
		r.LastListedOn,
		strconv.Itoa(r.NumHearings),
		strconv.Itoa(r.NumOrders),
		strconv.Itoa(r.NumIAPetitioner),
		strconv.Itoa(r.NumIARespondent),
		strconv.Itoa(r.NumIAInterlocuter),
		strconv.Itoa(r.TotalIA),
	}
}

// Key identifies a record for storage: the diary number, else the CNR
// number, else the case number. It is "" when none is known.
func (r CaseRecord) Key() string {
	for _, k := range []string{r.DiaryNumber, r.CNRNumber, r.CaseNumber} {
		if k != "" {
			return k
		}
	}
	return ""
}
