package main

import (
	"fmt"

	"github.com/fwojciec/formscrape"
	"github.com/fwojciec/formscrape/batch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	kind, err := formscrape.ParseComponentKind(c.Kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	html, source, err := readSource(deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	resp, err := deps.Extractor.ExtractComponents(html, kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	if c.Save {
		snapshot := &formscrape.Snapshot{
			SourceURL:   source,
			Kind:        kind,
			ContentHash: batch.HashContent(html),
			Response:    resp,
		}
		if params, err := deps.Scanner.Parameters(html, ""); err == nil {
			snapshot.Postback = params
		} else {
			fmt.Fprintf(deps.Stderr, "warning: postback state not saved: %s\n", formscrape.ErrorMessage(err))
		}

		if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snapshot); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved snapshot %s\n", snapshot.ID)
	}

	return writeJSON(deps.Stdout, resp)
}
