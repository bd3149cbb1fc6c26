// Package htmlquery extracts formscrape records from HTML using XPath
// path queries evaluated by github.com/antchfx/htmlquery.
package htmlquery

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/formscrape"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Document is a parsed HTML tree that extractors query.
// A Document must not be mutated while it is being queried.
type Document struct {
	root *html.Node
}

// NewDocument wraps an already parsed node. Queries are scoped to the
// subtree rooted at n, including n itself.
func NewDocument(n *html.Node) *Document {
	return &Document{root: n}
}

// Parse parses markup into a Document.
// Empty markup yields an empty document, not an error.
func Parse(s string) (*Document, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader reads and parses markup. Input that is not valid UTF-8 is
// transcoded using the detected character set before parsing.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, formscrape.Errorf(formscrape.EINVALID, "failed to read HTML: %v", err)
	}

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		if label := detectCharset(data); label != "" {
			if utf8Reader, err := charset.NewReaderLabel(label, bytes.NewReader(data)); err == nil {
				src = utf8Reader
			}
		}
	}

	root, err := htmlquery.Parse(src)
	if err != nil {
		return nil, formscrape.Errorf(formscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{root: root}, nil
}

// Root returns the root node of the document.
func (d *Document) Root() *html.Node {
	return d.root
}

// detectCharset guesses the character set of non UTF-8 markup.
func detectCharset(data []byte) string {
	result, err := chardet.NewHtmlDetector().DetectBest(data)
	if err != nil || result == nil {
		return ""
	}
	return strings.ToLower(result.Charset)
}

// selectAll evaluates expr against the document and returns the matches,
// or nil when nothing matched.
func (d *Document) selectAll(expr *xpath.Expr) []*html.Node {
	return htmlquery.QuerySelectorAll(d.root, expr)
}

// attr returns the value of the named attribute, or nil when it is absent.
func attr(n *html.Node, name string) *string {
	for _, a := range n.Attr {
		if a.Key == name {
			v := a.Val
			return &v
		}
	}
	return nil
}

// hasAttr reports whether the named attribute is present, whatever its value.
func hasAttr(n *html.Node, name string) bool {
	return htmlquery.ExistsAttr(n, name)
}

// element reads the attributes shared by all records.
func element(n *html.Node) formscrape.Element {
	return formscrape.Element{
		ID:    attr(n, "id"),
		Class: attr(n, "class"),
		Name:  attr(n, "name"),
	}
}

// innerText returns the trimmed text content of n.
func innerText(n *html.Node) string {
	return strings.TrimSpace(htmlquery.InnerText(n))
}
