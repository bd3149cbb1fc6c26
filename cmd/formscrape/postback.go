package main

import (
	"fmt"

	"github.com/fwojciec/formscrape"
)

// Run executes the postback command.
func (c *PostbackCmd) Run(deps *Dependencies) error {
	html, _, err := readSource(deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	params, err := deps.Scanner.Parameters(html, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, params)
	}
	fmt.Fprintln(deps.Stdout, params.Encode())
	return nil
}
