package mock

import "github.com/fwojciec/formscrape"

var _ formscrape.PostbackScanner = (*PostbackScanner)(nil)

// PostbackScanner is a mock implementation of formscrape.PostbackScanner.
type PostbackScanner struct {
	ViewStateFn       func(html string) (string, error)
	EventValidationFn func(html string) (string, error)
	ParametersFn      func(html string, target string) (*formscrape.PostbackParameters, error)
}

func (s *PostbackScanner) ViewState(html string) (string, error) {
	return s.ViewStateFn(html)
}

func (s *PostbackScanner) EventValidation(html string) (string, error) {
	return s.EventValidationFn(html)
}

func (s *PostbackScanner) Parameters(html string, target string) (*formscrape.PostbackParameters, error) {
	return s.ParametersFn(html, target)
}
