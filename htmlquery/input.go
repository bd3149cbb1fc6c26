package htmlquery

import (
	"github.com/antchfx/xpath"
	"github.com/fwojciec/formscrape"
	"golang.org/x/net/html"
)

var (
	textInputExpr   = xpath.MustCompile(`descendant-or-self::input[@type='text']`)
	hiddenInputExpr = xpath.MustCompile(`descendant-or-self::input[@type='hidden']`)
	checkboxExpr    = xpath.MustCompile(`descendant-or-self::input[@type='checkbox']`)
)

// TextInputs returns all <input type="text"> elements, or nil if there are none.
func (d *Document) TextInputs() []formscrape.TextInput {
	return textInputs(d.selectAll(textInputExpr))
}

// HiddenInputs returns all <input type="hidden"> elements, or nil if there are none.
func (d *Document) HiddenInputs() []formscrape.TextInput {
	return textInputs(d.selectAll(hiddenInputExpr))
}

func textInputs(nodes []*html.Node) []formscrape.TextInput {
	if len(nodes) == 0 {
		return nil
	}

	inputs := make([]formscrape.TextInput, 0, len(nodes))
	for _, n := range nodes {
		inputs = append(inputs, formscrape.TextInput{
			Element:   element(n),
			Text:      attr(n, "value"),
			MaxLength: attr(n, "maxlength"),
			Label:     "",
			// Always reported as enabled; Disabled carries the attribute.
			IsEnabled: true,
			Disabled:  hasAttr(n, "disabled"),
		})
	}
	return inputs
}

// Checkboxes returns all <input type="checkbox"> elements, or nil if there are none.
func (d *Document) Checkboxes() []formscrape.Checkbox {
	nodes := d.selectAll(checkboxExpr)
	if len(nodes) == 0 {
		return nil
	}

	boxes := make([]formscrape.Checkbox, 0, len(nodes))
	for _, n := range nodes {
		boxes = append(boxes, formscrape.Checkbox{
			Element:   element(n),
			IsChecked: hasAttr(n, "checked"),
			IsEnabled: hasAttr(n, "disabled"),
			Text:      checkboxLabel(n),
		})
	}
	return boxes
}

// checkboxLabel returns the trimmed text of the node following n.
// Best effort only: it assumes the label is rendered right after the box
// and knows nothing about <label for=...> associations.
func checkboxLabel(n *html.Node) *string {
	if n.NextSibling == nil {
		return nil
	}
	text := innerText(n.NextSibling)
	return &text
}
