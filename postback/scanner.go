// Package postback reads the hidden state fields of server-rendered forms
// (__VIEWSTATE, __EVENTVALIDATION and friends) straight from raw markup,
// without building a DOM.
package postback

import (
	"strings"

	"github.com/fwojciec/formscrape"
)

// Ensure Scanner implements formscrape.PostbackScanner at compile time.
var _ formscrape.PostbackScanner = (*Scanner)(nil)

// Scanner locates postback tokens in raw markup.
// Scanner is stateless and safe for concurrent use.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ViewState returns the value of the __VIEWSTATE field.
// Returns "" when the page has no such field and EMALFORMED when the field
// exists but its value cannot be read.
func (s *Scanner) ViewState(html string) (string, error) {
	return scanToken(html, formscrape.FieldViewState)
}

// EventValidation returns the value of the __EVENTVALIDATION field.
// Returns "" when the page has no such field and EMALFORMED when the field
// exists but its value cannot be read.
func (s *Scanner) EventValidation(html string) (string, error) {
	return scanToken(html, formscrape.FieldEventValidation)
}

// Parameters assembles the fields posted back when target raises an event.
// __EVENTTARGET, __EVENTARGUMENT and __VIEWSTATE are always present.
// __EVENTVALIDATION and __VIEWSTATEENCRYPTED are added only when their
// names occur somewhere in html.
func (s *Scanner) Parameters(html string, target string) (*formscrape.PostbackParameters, error) {
	viewState, err := s.ViewState(html)
	if err != nil {
		return nil, err
	}

	params := &formscrape.PostbackParameters{}
	params.Add(formscrape.FieldEventTarget, target)
	params.Add(formscrape.FieldEventArgument, "")
	params.Add(formscrape.FieldViewState, viewState)

	if strings.Contains(html, formscrape.FieldEventValidation) {
		eventValidation, err := s.EventValidation(html)
		if err != nil {
			return nil, err
		}
		params.Add(formscrape.FieldEventValidation, eventValidation)
	}

	if strings.Contains(html, formscrape.FieldViewStateEncrypted) {
		params.Add(formscrape.FieldViewStateEncrypted, "")
	}

	return params, nil
}

var defaultScanner = NewScanner()

// LoadViewState returns the __VIEWSTATE value of html using a default Scanner.
func LoadViewState(html string) (string, error) {
	return defaultScanner.ViewState(html)
}

// LoadEventValidation returns the __EVENTVALIDATION value of html using a default Scanner.
func LoadEventValidation(html string) (string, error) {
	return defaultScanner.EventValidation(html)
}

// LoadParameters assembles postback parameters using a default Scanner.
// Pass "" as target when no control raised the event.
func LoadParameters(html string, target string) (*formscrape.PostbackParameters, error) {
	return defaultScanner.Parameters(html, target)
}
