// Package ia attributes interlocutory applications to the side that filed them.
package ia

import "github.com/gaurav-prasanna/casepipe/core/normalize"

// Bucket is the side an IA filer is attributed to.
type Bucket int

const (
	Skipped Bucket = iota
	Petitioner
	Respondent
	Interlocuter
)

func (b Bucket) String() string {
	switch b {
	case Petitioner:
		return "petitioner"
	case Respondent:
		return "respondent"
	case Interlocuter:
		return "interlocuter"
	default:
		return "skipped"
	}
}

// TieBreak decides the bucket of a filer from its membership in the
// petitioner and respondent counsel sets.
type TieBreak func(inPetitioner, inRespondent bool) Bucket

// PetitionerFirst attributes a filer found in both counsel sets to the petitioner.
func PetitionerFirst(inPetitioner, inRespondent bool) Bucket {
	switch {
	case inPetitioner:
		return Petitioner
	case inRespondent:
		return Respondent
	default:
		return Interlocuter
	}
}

// Result holds the per-bucket IA counts. Total is always the sum of the
// three buckets; filers whose name normalizes to "" are in none of them.
type Result struct {
	Petitioner   int
	Respondent   int
	Interlocuter int
	Total        int
	// Normalized is the normalized form of every filer, including empty ones.
	Normalized []string
}

// Attribute buckets each raw filer name against the normalized petitioner
// and respondent counsel names using rule. A nil rule means PetitionerFirst.
func Attribute(filers, petitioners, respondents []string, rule TieBreak) Result {
	if rule == nil {
		rule = PetitionerFirst
	}
	pet := toSet(petitioners)
	resp := toSet(respondents)

	res := Result{Normalized: make([]string, 0, len(filers))}
	for _, f := range filers {
		name := normalize.Name(f)
		res.Normalized = append(res.Normalized, name)
		if name == "" {
			continue
		}
		switch rule(pet[name], resp[name]) {
		case Petitioner:
			res.Petitioner++
		case Respondent:
			res.Respondent++
		case Interlocuter:
			res.Interlocuter++
		default:
			continue
		}
		res.Total++
	}
	return res
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
