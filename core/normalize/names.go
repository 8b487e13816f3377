// Package normalize canonicalizes counsel and party names so that names
// rendered in different sections of a case page compare equal.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// bracketRegex matches [..] and (..) annotations such as [AOR] or (SCLSC).
	bracketRegex = regexp.MustCompile(`\[.*?\]|\(.*?\)`)
	// wordRegex matches Unicode words, the units titles are matched against.
	wordRegex = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	// punctRegex matches the punctuation dropped from names.
	punctRegex = regexp.MustCompile(`[.,]`)
	spaceRegex = regexp.MustCompile(`[\s\p{Zs}]+`)
	// splitRegex separates names in a free-text counsel list.
	splitRegex = regexp.MustCompile(`(?i),|&|\band\b`)
)

// titles are the honorifics and counsel titles dropped from names.
var titles = map[string]bool{
	"MR": true, "MS": true, "MRS": true,
	"ADV": true, "ADVOCATE": true, "AOR": true,
}

// invisibleSpaces are code points the page uses in place of ordinary spaces.
var invisibleSpaces = strings.NewReplacer("\u00a0", " ", "\u200b", " ")

// Name returns the canonical form of a person name: upper-cased, with
// bracketed annotations, titles, commas and periods removed and whitespace
// (including Unicode spaces such as U+2009 and U+202F) collapsed.
// Name is idempotent: Name(Name(x)) == Name(x).
//
// This differs from the legacy single-pass output when removing periods
// exposes a title: "M.R Verma" becomes "VERMA", not "MR VERMA".
func Name(text string) string {
	if text == "" {
		return ""
	}
	// Dropping punctuation can expose a new title ("M.R" becomes "MR"),
	// so the steps are repeated until the result no longer changes.
	for {
		next := nameOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func nameOnce(text string) string {
	text = invisibleSpaces.Replace(text)
	text = strings.ToUpper(text)
	text = bracketRegex.ReplaceAllString(text, "")
	text = stripTitles(text)
	text = punctRegex.ReplaceAllString(text, "")
	text = spaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripTitles removes whole-word titles together with one trailing period.
// A title glued to any letter, accented ones included, is part of a name.
func stripTitles(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range wordRegex.FindAllStringIndex(text, -1) {
		if !titles[text[loc[0]:loc[1]]] {
			continue
		}
		b.WriteString(text[last:loc[0]])
		last = loc[1]
		if last < len(text) && text[last] == '.' {
			last++
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

// SplitNames splits a counsel list on commas, ampersands and the word "and",
// normalizing each piece. Empty pieces are dropped; order of appearance is
// kept and duplicates are not removed.
func SplitNames(text string) []string {
	if text == "" {
		return nil
	}
	parts := splitRegex.Split(text, -1)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := Name(p); n != "" {
			names = append(names, n)
		}
	}
	return names
}
