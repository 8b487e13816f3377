// Package extract, bench and first-judge resolution.
package extract

import (
	"regexp"
	"strings"
)

var andRegex = regexp.MustCompile(`(?i)and`)

// Bench returns the text between the first "[" and the last "]" after it.
// Text without both brackets has no bench.
func Bench(text string) string {
	if !strings.Contains(text, "[") || !strings.Contains(text, "]") {
		return ""
	}
	_, after, _ := strings.Cut(text, "[")
	if i := strings.LastIndex(after, "]"); i >= 0 {
		after = after[:i]
	}
	return strings.TrimSpace(after)
}

// FirstJudge returns the first-listed judge of a bench. A comma takes
// precedence; otherwise the bench is split once on "and", which also
// separates names glued to it ("SHARMAandGUPTA").
func FirstJudge(bench string) string {
	if bench == "" {
		return ""
	}
	if before, _, found := strings.Cut(bench, ","); found {
		return strings.TrimSpace(before)
	}
	parts := andRegex.Split(bench, 2)
	return strings.TrimSpace(parts[0])
}
