package main

import (
	"fmt"

	"github.com/fwojciec/formscrape"
	"github.com/fwojciec/formscrape/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	kind, err := formscrape.ParseComponentKind(c.Kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Scanner:     deps.Scanner,
		RateLimiter: deps.RateLimiter,
		Concurrency: c.Concurrency,
		Log: func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, "  "+format+"\n", args...)
		},
	}
	if c.Save {
		runner.Snapshots = deps.Snapshots
	}

	result, err := runner.Run(deps.Ctx, c.URLs, kind, c.progress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formscrape.ErrorMessage(err))
		return err
	}

	if err := writeJSON(deps.Stdout, result); err != nil {
		return err
	}

	if result.Failed > 0 && result.Extracted == 0 {
		return formscrape.Errorf(formscrape.EINTERNAL, "all %d pages failed", result.Failed)
	}
	return nil
}

// progress reports per-page outcomes on stderr.
func (c *BatchCmd) progress(deps *Dependencies) batch.ProgressFunc {
	return func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] ok   %s\n", e.Completed, e.Total, batch.TruncateURL(e.URL, 60))
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] fail %s: %s\n", e.Completed, e.Total, batch.TruncateURL(e.URL, 60), e.Error)
		}
	}
}
