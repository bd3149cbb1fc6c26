package htmlquery

import (
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/formscrape"
)

var (
	selectExpr = xpath.MustCompile(`descendant-or-self::select`)
	optionExpr = xpath.MustCompile(`.//option`)
)

// ComboBoxes returns all <select> elements with their options in document
// order, or nil if there are none.
func (d *Document) ComboBoxes() []formscrape.ComboBox {
	nodes := d.selectAll(selectExpr)
	if len(nodes) == 0 {
		return nil
	}

	combos := make([]formscrape.ComboBox, 0, len(nodes))
	for _, n := range nodes {
		combo := formscrape.ComboBox{
			Element: element(n),
			Items:   []formscrape.ComboItem{},
		}
		for _, opt := range htmlquery.QuerySelectorAll(n, optionExpr) {
			combo.Items = append(combo.Items, formscrape.ComboItem{
				Option:     htmlquery.InnerText(opt),
				Value:      attr(opt, "value"),
				IsSelected: hasAttr(opt, "selected"),
			})
		}
		combos = append(combos, combo)
	}
	return combos
}
