package mock

import "github.com/fwojciec/formscrape"

var _ formscrape.ComponentExtractor = (*ComponentExtractor)(nil)

// ComponentExtractor is a mock implementation of formscrape.ComponentExtractor.
type ComponentExtractor struct {
	ExtractComponentsFn func(html string, kind formscrape.ComponentKind) (*formscrape.ComponentResponse, error)
}

func (e *ComponentExtractor) ExtractComponents(html string, kind formscrape.ComponentKind) (*formscrape.ComponentResponse, error) {
	return e.ExtractComponentsFn(html, kind)
}

var _ formscrape.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of formscrape.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}
