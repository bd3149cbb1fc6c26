package htmlquery

import (
	"github.com/fwojciec/formscrape"
	"golang.org/x/net/html"
)

// Ensure Extractor implements formscrape.ComponentExtractor at compile time.
var _ formscrape.ComponentExtractor = (*Extractor)(nil)

// Extractor parses HTML and extracts the components of a requested kind.
// Extractor is safe for concurrent use.
type Extractor struct {
	sanitizer formscrape.Sanitizer
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSanitizer runs s over the markup before it is parsed.
func WithSanitizer(s formscrape.Sanitizer) Option {
	return func(e *Extractor) {
		e.sanitizer = s
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractComponents parses markup and returns the components of kind.
// Returns EINVALID for an unknown kind without parsing the markup.
func (e *Extractor) ExtractComponents(markup string, kind formscrape.ComponentKind) (*formscrape.ComponentResponse, error) {
	if _, err := formscrape.ParseComponentKind(string(kind)); err != nil {
		return nil, err
	}

	if e.sanitizer != nil {
		clean, err := e.sanitizer.Sanitize(markup)
		if err != nil {
			return nil, err
		}
		markup = clean
	}

	doc, err := Parse(markup)
	if err != nil {
		return nil, err
	}
	return ExtractDocument(doc, kind)
}

// ExtractNode extracts the components of kind found in the subtree rooted at n.
func ExtractNode(n *html.Node, kind formscrape.ComponentKind) (*formscrape.ComponentResponse, error) {
	return ExtractDocument(NewDocument(n), kind)
}

// ExtractDocument dispatches to exactly one extractor and fills only the
// matching field of the response. Returns EINVALID for an unknown kind.
func ExtractDocument(doc *Document, kind formscrape.ComponentKind) (*formscrape.ComponentResponse, error) {
	resp := &formscrape.ComponentResponse{Kind: kind}
	switch kind {
	case formscrape.KindInputText:
		resp.InputTexts = doc.TextInputs()
	case formscrape.KindInputCheckbox:
		resp.Checkboxes = doc.Checkboxes()
	case formscrape.KindInputHidden:
		resp.InputHidden = doc.HiddenInputs()
	case formscrape.KindComboBox:
		resp.ComboBoxes = doc.ComboBoxes()
	case formscrape.KindDataGrid:
		resp.Grids = doc.Grids()
	case formscrape.KindLinkButton:
		resp.LinkButtons = doc.Links()
	case formscrape.KindImage:
		resp.Images = doc.Images()
	default:
		return nil, formscrape.Errorf(formscrape.EINVALID, "unknown component kind %q", kind)
	}
	return resp, nil
}
