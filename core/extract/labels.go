// Package extract, label synonyms.
// The case-details block renders the same concept under different labels
// across page versions; each logical field lists its labels in lookup order.
package extract

// Labels holds the ordered synonym list for every case-details field.
type Labels struct {
	DiaryNumber         []string `mapstructure:"diary_number"`
	CaseNumber          []string `mapstructure:"case_number"`
	Status              []string `mapstructure:"status"`
	CNRNumber           []string `mapstructure:"cnr_number"`
	DisposalType        []string `mapstructure:"disposal_type"`
	Petitioner          []string `mapstructure:"petitioner"`
	Respondent          []string `mapstructure:"respondent"`
	PetitionerAdvocates []string `mapstructure:"petitioner_advocates"`
	RespondentAdvocates []string `mapstructure:"respondent_advocates"`
	ImpleaderAdvocates  []string `mapstructure:"impleader_advocates"`
	IntervenorAdvocates []string `mapstructure:"intervenor_advocates"`
	LastListed          []string `mapstructure:"last_listed"`
}

// DefaultLabels returns the labels used by the Supreme Court case-status page.
func DefaultLabels() Labels {
	return Labels{
		DiaryNumber:         []string{"Diary Number", "Diary No."},
		CaseNumber:          []string{"Case Number", "Case No."},
		Status:              []string{"Status/Stage", "Status"},
		CNRNumber:           []string{"CNR Number", "CNR No."},
		DisposalType:        []string{"Disp.Type"},
		Petitioner:          []string{"Petitioner(s)"},
		Respondent:          []string{"Respondent(s)"},
		PetitionerAdvocates: []string{"Petitioner Advocate(s)"},
		RespondentAdvocates: []string{"Respondent Advocate(s)"},
		ImpleaderAdvocates:  []string{"Impleaders Advocate(s)"},
		IntervenorAdvocates: []string{"Intervenor Advocate(s)"},
		LastListed:          []string{"Present/Last Listed On", "Last Listed On"},
	}
}

// Merge returns l with every empty synonym list taken from fallback.
func (l Labels) Merge(fallback Labels) Labels {
	pick := func(a, b []string) []string {
		if len(a) == 0 {
			return b
		}
		return a
	}
	return Labels{
		DiaryNumber:         pick(l.DiaryNumber, fallback.DiaryNumber),
		CaseNumber:          pick(l.CaseNumber, fallback.CaseNumber),
		Status:              pick(l.Status, fallback.Status),
		CNRNumber:           pick(l.CNRNumber, fallback.CNRNumber),
		DisposalType:        pick(l.DisposalType, fallback.DisposalType),
		Petitioner:          pick(l.Petitioner, fallback.Petitioner),
		Respondent:          pick(l.Respondent, fallback.Respondent),
		PetitionerAdvocates: pick(l.PetitionerAdvocates, fallback.PetitionerAdvocates),
		RespondentAdvocates: pick(l.RespondentAdvocates, fallback.RespondentAdvocates),
		ImpleaderAdvocates:  pick(l.ImpleaderAdvocates, fallback.ImpleaderAdvocates),
		IntervenorAdvocates: pick(l.IntervenorAdvocates, fallback.IntervenorAdvocates),
		LastListed:          pick(l.LastListed, fallback.LastListed),
	}
}
