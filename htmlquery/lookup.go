package htmlquery

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/formscrape"
	"golang.org/x/net/html"
)

// FindByID returns the elements whose id equals id, or nil if there are none.
func (d *Document) FindByID(id string) ([]*html.Node, error) {
	return d.query(fmt.Sprintf(`descendant-or-self::*[@id=%s]`, literal(id)))
}

// FindByClass returns the elements whose class attribute equals class
// exactly, or nil if there are none.
func (d *Document) FindByClass(class string) ([]*html.Node, error) {
	return d.query(fmt.Sprintf(`descendant-or-self::*[@class=%s]`, literal(class)))
}

// FindByClassContains returns the elements whose class attribute contains
// class as a substring, or nil if there are none.
func (d *Document) FindByClassContains(class string) ([]*html.Node, error) {
	return d.query(fmt.Sprintf(`descendant-or-self::*[contains(@class, %s)]`, literal(class)))
}

// Tags returns all elements named tag, or nil if there are none.
func (d *Document) Tags(tag string) ([]*html.Node, error) {
	return d.query(fmt.Sprintf(`descendant-or-self::*[name()=%s]`, literal(strings.ToLower(tag))))
}

// SelectedValueByText returns the value of the option of select id whose
// text matches text, ignoring case and diacritics. An option without a
// value attribute yields its text, as a browser would submit it.
// Returns ENOTFOUND when the select or a matching option does not exist.
func (d *Document) SelectedValueByText(id, text string) (string, error) {
	nodes, err := d.FindByID(id)
	if err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return "", formscrape.Errorf(formscrape.ENOTFOUND, "element %q not found", id)
	}

	want := foldText(text)
	for _, opt := range htmlquery.QuerySelectorAll(nodes[0], optionExpr) {
		label := htmlquery.InnerText(opt)
		if foldText(label) != want {
			continue
		}
		if v := attr(opt, "value"); v != nil {
			return *v, nil
		}
		return strings.TrimSpace(label), nil
	}
	return "", formscrape.Errorf(formscrape.ENOTFOUND, "option %q not found in %q", text, id)
}

func (d *Document) query(expr string) ([]*html.Node, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, formscrape.Errorf(formscrape.EINVALID, "invalid query %q: %v", expr, err)
	}
	return d.selectAll(e), nil
}

// foldText normalizes option labels for comparison.
func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(formscrape.RemoveDiacritics(s)))
}

// literal quotes s as an XPath string literal.
func literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		quoted = append(quoted, "'"+p+"'")
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
