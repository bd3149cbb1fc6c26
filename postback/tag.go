package postback

import (
	"strings"

	"github.com/fwojciec/formscrape"
)

// attribute is a single name/value pair of a start tag.
type attribute struct {
	name  string
	value string
}

// tag scanner states.
const (
	stateTagName = iota
	stateBeforeName
	stateName
	stateAfterName
	stateBeforeValue
)

// scanTag tokenizes the start tag beginning at s[start] == '<' and returns
// its attributes and the index just past the closing '>'.
// Returns EMALFORMED if the input ends before the tag is closed.
func scanTag(s string, start int) ([]attribute, int, error) {
	var attrs []attribute
	var name strings.Builder

	state := stateTagName
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateTagName:
			switch {
			case c == '>':
				return attrs, i + 1, nil
			case isSpace(c) || c == '/':
				state = stateBeforeName
			}

		case stateBeforeName:
			switch {
			case c == '>':
				return attrs, i + 1, nil
			case isSpace(c) || c == '/':
			default:
				name.Reset()
				name.WriteByte(c)
				state = stateName
			}

		case stateName:
			switch {
			case c == '>':
				attrs = append(attrs, attribute{name: name.String()})
				return attrs, i + 1, nil
			case c == '=':
				state = stateBeforeValue
			case isSpace(c):
				state = stateAfterName
			case c == '/':
				attrs = append(attrs, attribute{name: name.String()})
				state = stateBeforeName
			default:
				name.WriteByte(c)
			}

		case stateAfterName:
			switch {
			case c == '>':
				attrs = append(attrs, attribute{name: name.String()})
				return attrs, i + 1, nil
			case c == '=':
				state = stateBeforeValue
			case isSpace(c):
			default:
				attrs = append(attrs, attribute{name: name.String()})
				name.Reset()
				name.WriteByte(c)
				state = stateName
			}

		case stateBeforeValue:
			switch {
			case isSpace(c):
			case c == '"' || c == '\'':
				end := strings.IndexByte(s[i+1:], c)
				if end < 0 {
					return nil, 0, formscrape.Errorf(formscrape.EMALFORMED, "unterminated attribute %q", name.String())
				}
				attrs = append(attrs, attribute{name: name.String(), value: s[i+1 : i+1+end]})
				i += end + 1
				state = stateBeforeName
			case c == '>':
				attrs = append(attrs, attribute{name: name.String()})
				return attrs, i + 1, nil
			default:
				end := i
				for end < len(s) && !isSpace(s[end]) && s[end] != '>' {
					end++
				}
				attrs = append(attrs, attribute{name: name.String(), value: s[i:end]})
				i = end - 1
				state = stateBeforeName
			}
		}
	}
	return nil, 0, formscrape.Errorf(formscrape.EMALFORMED, "unterminated tag")
}

// lookup returns the value of the first attribute named name, ignoring case.
func lookup(attrs []attribute, name string) (string, bool) {
	for _, a := range attrs {
		if strings.EqualFold(a.name, name) {
			return a.value, true
		}
	}
	return "", false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
