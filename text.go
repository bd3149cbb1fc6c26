package formscrape

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// isWhitespace reports whether r belongs to the whitespace-equivalence set
// collapsed by RemoveExtraWhitespace.
func isWhitespace(r rune) bool {
	switch r {
	case '\u0020', '\u00A0', '\u1680',
		'\u2000', '\u2001', '\u2002', '\u2003', '\u2004', '\u2005',
		'\u2006', '\u2007', '\u2008', '\u2009', '\u200A',
		'\u202F', '\u205F', '\u3000', '\u2028', '\u2029',
		'\u0009', '\u000A', '\u000B', '\u000C', '\u000D', '\u0085':
		return true
	}
	return false
}

// RemoveExtraWhitespace collapses every run of whitespace-equivalent
// characters (including non-breaking, em/en and ideographic spaces) into a
// single ordinary space. Other characters are kept in order.
func RemoveExtraWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	skip := false
	for _, r := range s {
		if isWhitespace(r) {
			if skip {
				continue
			}
			b.WriteByte(' ')
			skip = true
			continue
		}
		skip = false
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveDiacritics decomposes s to NFD and drops all non-spacing marks.
// On a transform failure s is returned unchanged.
func RemoveDiacritics(s string) string {
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CleanText reduces s to its uppercase ASCII alphanumeric skeleton, for
// comparing labels regardless of case, spacing, accents and punctuation.
func CleanText(s string) string {
	if s == "" {
		return s
	}
	s = cases.Upper(language.Und).String(s)
	s = RemoveExtraWhitespace(s)
	s = RemoveDiacritics(s)
	return nonAlphanumeric.ReplaceAllString(s, "")
}
