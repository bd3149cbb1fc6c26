// Package goquery strips executable and presentational noise from markup
// before it reaches the element extractors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/formscrape"
)

// Ensure Sanitizer implements formscrape.Sanitizer at compile time.
var _ formscrape.Sanitizer = (*Sanitizer)(nil)

// DefaultAttributes lists the event handler attributes removed by default.
var DefaultAttributes = []string{"onload", "onclick"}

// Sanitizer removes script elements, stylesheet links and inline event
// handlers from an HTML document.
type Sanitizer struct {
	attributes []string
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithAttributes replaces the list of attributes stripped from every element.
func WithAttributes(names ...string) Option {
	return func(s *Sanitizer) {
		s.attributes = names
	}
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		attributes: DefaultAttributes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sanitize returns html with scripts, stylesheet links and event handler
// attributes removed. Form elements and their attributes are left intact.
func (s *Sanitizer) Sanitize(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", formscrape.Errorf(formscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script").Remove()
	doc.Find("link").FilterFunction(isStylesheet).Remove()

	for _, name := range s.attributes {
		doc.Find("[" + name + "]").RemoveAttr(name)
	}

	out, err := doc.Html()
	if err != nil {
		return "", formscrape.Errorf(formscrape.EINTERNAL, "failed to render HTML: %v", err)
	}
	return out, nil
}

func isStylesheet(_ int, sel *goquery.Selection) bool {
	rel, _ := sel.Attr("rel")
	for _, token := range strings.Fields(rel) {
		if strings.EqualFold(token, "stylesheet") {
			return true
		}
	}
	return false
}
