package postback

import (
	"strings"

	"github.com/fwojciec/formscrape"
)

// scanToken finds the first occurrence of marker as a whole name and
// returns the value attached to it.
//
// When the marker sits inside a tag, the tag's attributes are tokenized and
// its value attribute is returned, whatever the attribute order; a tag that
// cannot be tokenized or has no value attribute is EMALFORMED. Outside a tag
// the first quoted string after the next "value" keyword is used, which
// covers script assignments such as theForm.__VIEWSTATE.value = "...".
func scanToken(html, marker string) (string, error) {
	pos := findMarker(html, marker)
	if pos < 0 {
		return "", nil
	}

	if start, ok := enclosingTag(html, pos); ok {
		attrs, end, err := scanTag(html, start)
		if err != nil {
			return "", err
		}
		if end > pos {
			if v, ok := lookup(attrs, "value"); ok {
				return v, nil
			}
			return "", formscrape.Errorf(formscrape.EMALFORMED, "%s field has no value attribute", marker)
		}
	}

	return scanAfterKeyword(html, pos+len(marker), marker)
}

// findMarker returns the index of the first occurrence of marker that is
// not a prefix of a longer name (__VIEWSTATE vs __VIEWSTATEGENERATOR).
func findMarker(s, marker string) int {
	offset := 0
	for {
		i := strings.Index(s[offset:], marker)
		if i < 0 {
			return -1
		}
		i += offset
		end := i + len(marker)
		if end >= len(s) || !isNameByte(s[end]) {
			return i
		}
		offset = end
	}
}

// enclosingTag reports the start of the tag that contains pos, if any.
func enclosingTag(s string, pos int) (int, bool) {
	lt := strings.LastIndexByte(s[:pos], '<')
	gt := strings.LastIndexByte(s[:pos], '>')
	if lt < 0 || lt < gt {
		return 0, false
	}
	return lt, true
}

// scanAfterKeyword reads the quoted string following the first "value"
// keyword (case-insensitive) found at or after from.
func scanAfterKeyword(s string, from int, marker string) (string, error) {
	const keyword = "value"

	i := indexFold(s[from:], keyword)
	if i < 0 {
		return "", formscrape.Errorf(formscrape.EMALFORMED, "%s field has no value", marker)
	}
	i += from + len(keyword)

	i = skipSpace(s, i)
	if i < len(s) && (s[i] == '=' || s[i] == ':') {
		i = skipSpace(s, i+1)
	}
	if i >= len(s) || (s[i] != '"' && s[i] != '\'') {
		return "", formscrape.Errorf(formscrape.EMALFORMED, "%s value is not quoted", marker)
	}

	quote := s[i]
	end := strings.IndexByte(s[i+1:], quote)
	if end < 0 {
		return "", formscrape.Errorf(formscrape.EMALFORMED, "%s value is not terminated", marker)
	}
	return s[i+1 : i+1+end], nil
}

// indexFold is strings.Index ignoring ASCII case.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func isNameByte(c byte) bool {
	return c == '_' || c == '$' || c == '-' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
