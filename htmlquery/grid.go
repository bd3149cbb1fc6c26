package htmlquery

import (
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/formscrape"
	"golang.org/x/net/html"
)

var (
	tableExpr = xpath.MustCompile(`descendant-or-self::table`)

	// Queries below are evaluated with the table or row as their root,
	// so they never see cells of sibling tables.
	headCellExpr   = xpath.MustCompile(`.//thead/tr/*[name()='th' or name()='td']`)
	bodyRowExpr    = xpath.MustCompile(`.//tbody/tr`)
	anyBodyRowExpr = xpath.MustCompile(`.//tr[not(parent::thead)]`)
	rowCellExpr    = xpath.MustCompile(`.//td`)
)

// Grids returns all <table> elements as grids, or nil if there are none.
func (d *Document) Grids() []formscrape.Grid {
	nodes := d.selectAll(tableExpr)
	if len(nodes) == 0 {
		return nil
	}

	grids := make([]formscrape.Grid, 0, len(nodes))
	for _, n := range nodes {
		grids = append(grids, grid(n))
	}
	return grids
}

func grid(table *html.Node) formscrape.Grid {
	g := formscrape.Grid{
		Element: element(table),
		Head:    formscrape.GridHead{Columns: []formscrape.ColumnHead{}},
		Lines:   []formscrape.Line{},
	}

	for i, cell := range htmlquery.QuerySelectorAll(table, headCellExpr) {
		g.Head.Columns = append(g.Head.Columns, formscrape.ColumnHead{
			Text:     innerText(cell),
			ID:       attr(cell, "id"),
			Position: i,
		})
	}

	rows := htmlquery.QuerySelectorAll(table, bodyRowExpr)
	if len(rows) == 0 {
		// Tables without a <tbody>: take every row outside <thead> so the
		// header is not counted again as a body line.
		rows = htmlquery.QuerySelectorAll(table, anyBodyRowExpr)
	}

	for i, row := range rows {
		line := formscrape.Line{
			LineNumber: i,
			Class:      attr(row, "class"),
			Columns:    []formscrape.Column{},
		}
		for _, cell := range htmlquery.QuerySelectorAll(row, rowCellExpr) {
			line.Columns = append(line.Columns, formscrape.Column{Text: innerText(cell)})
		}
		g.Lines = append(g.Lines, line)
	}

	return g
}
