package htmlquery

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/formscrape"
)

var (
	linkExpr  = xpath.MustCompile(`descendant-or-self::a`)
	imageExpr = xpath.MustCompile(`descendant-or-self::img`)
)

// Links returns all <a> elements, or nil if there are none.
// Link text is the trimmed inner markup, which may itself contain tags.
func (d *Document) Links() []formscrape.Link {
	nodes := d.selectAll(linkExpr)
	if len(nodes) == 0 {
		return nil
	}

	links := make([]formscrape.Link, 0, len(nodes))
	for _, n := range nodes {
		links = append(links, formscrape.Link{
			Element: element(n),
			Href:    attr(n, "href"),
			Text:    strings.TrimSpace(htmlquery.OutputHTML(n, false)),
		})
	}
	return links
}

// Images returns all <img> elements, or nil if there are none.
func (d *Document) Images() []formscrape.Image {
	nodes := d.selectAll(imageExpr)
	if len(nodes) == 0 {
		return nil
	}

	images := make([]formscrape.Image, 0, len(nodes))
	for _, n := range nodes {
		images = append(images, formscrape.Image{
			Element: element(n),
			Src:     attr(n, "src"),
			Alt:     attr(n, "alt"),
		})
	}
	return images
}
