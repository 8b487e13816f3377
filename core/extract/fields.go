// Package extract implements the case-detail field extractors.
// Every extractor takes one raw label value and returns one derived string;
// a value that does not match yields "" rather than an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/casepipe/core"
)

var (
	diaryRegex        = regexp.MustCompile(`\b\d+/\d+\b`)
	statusRegex       = regexp.MustCompile(`^[A-Z]+`)
	registrationRegex = regexp.MustCompile(`Registered on (\d{2}-\d{2}-\d{4})`)
	filingRegex       = regexp.MustCompile(`Filed on (\d{2}-\d{2}-\d{4})`)
)

const (
	registeredMarker = "Registered on"
	caseNoMarker     = "No."
)

// FirstMatching returns the value of the first label in keys present in
// fields, or "" when none is.
func FirstMatching(fields core.RawFieldMap, keys []string) string {
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			return v
		}
	}
	return ""
}

// DiaryNumber returns the first whole-word "digits/digits" token.
func DiaryNumber(text string) string {
	return diaryRegex.FindString(text)
}

// CaseNumber returns the text before "Registered on", trimmed.
func CaseNumber(text string) string {
	before, _, _ := strings.Cut(text, registeredMarker)
	return strings.TrimSpace(before)
}

// CaseType returns the text before "No.", or "" when the marker is absent.
func CaseType(text string) string {
	before, _, found := strings.Cut(text, caseNoMarker)
	if !found {
		return ""
	}
	return strings.TrimSpace(before)
}

// CaseStatus returns the leading run of upper-case letters, e.g. "DISPOSED".
func CaseStatus(text string) string {
	return statusRegex.FindString(strings.TrimSpace(text))
}

// RegistrationDate returns the dd-mm-yyyy date following "Registered on ".
func RegistrationDate(text string) string {
	return submatch(registrationRegex, text)
}

// FilingDate returns the dd-mm-yyyy date following "Filed on ".
func FilingDate(text string) string {
	return submatch(filingRegex, text)
}

func submatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
