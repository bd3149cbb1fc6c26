package main

import (
	"fmt"

	"github.com/fwojciec/formscrape"
	"github.com/fwojciec/formscrape/htmlquery"
)

// Run executes the option command.
func (c *OptionCmd) Run(deps *Dependencies) error {
	html, _, err := readSource(deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	doc, err := htmlquery.Parse(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	value, err := doc.SelectedValueByText(c.ID, c.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, value)
	return nil
}
