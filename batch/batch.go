// Package batch extracts one component kind from many pages concurrently.
// It coordinates rate-limited fetching, extraction, postback scanning and
// optional snapshot storage.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/formscrape"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Runner orchestrates batch extraction.
// Scanner, Snapshots, RateLimiter and Log are optional.
type Runner struct {
	Fetcher     formscrape.Fetcher
	Extractor   formscrape.ComponentExtractor
	Scanner     formscrape.PostbackScanner
	Snapshots   formscrape.SnapshotService
	RateLimiter formscrape.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Log         LogFunc
}

// PageResult is the outcome for a single URL.
type PageResult struct {
	URL         string                         `json:"url"`
	ContentHash string                         `json:"contentHash,omitempty"`
	Bytes       int                            `json:"bytes"`
	Response    *formscrape.ComponentResponse  `json:"response,omitempty"`
	Postback    *formscrape.PostbackParameters `json:"postback,omitempty"`
	SnapshotID  string                         `json:"snapshotId,omitempty"`
	Error       string                         `json:"error,omitempty"`

	Err error `json:"-"`
}

// Result holds the outcome of a batch run. Pages are in input order.
type Result struct {
	Pages     []PageResult `json:"pages"`
	Extracted int          `json:"extracted"`
	Failed    int          `json:"failed"`
	Saved     int          `json:"saved"`
	Records   int          `json:"records"`
	Bytes     int          `json:"bytes"`
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches every URL, extracts components of kind and, when Snapshots is
// set, stores a snapshot per successful page. Per-URL failures are recorded
// in the result rather than returned. Returns EINVALID for an unknown kind.
func (r *Runner) Run(ctx context.Context, urls []string, kind formscrape.ComponentKind, progress ProgressFunc) (*Result, error) {
	if _, err := formscrape.ParseComponentKind(string(kind)); err != nil {
		return nil, err
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan indexedResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- indexedResult{position: i, page: r.processURL(gctx, u, kind)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Pages: make([]PageResult, total)}
	for ir := range resultCh {
		result.Pages[ir.position] = ir.page
		n := int(completed.Add(1))

		if progress == nil {
			continue
		}
		event := ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: ir.page.URL}
		if ir.page.Err != nil {
			event.Type = ProgressFailed
			event.Error = ir.page.Err
		}
		progress(event)
	}

	for i := range result.Pages {
		page := &result.Pages[i]
		if page.Err == nil && r.Snapshots != nil {
			r.save(ctx, page, kind)
		}
		if page.Err != nil {
			page.Error = page.Err.Error()
			result.Failed++
			continue
		}
		result.Extracted++
		result.Records += page.Response.Len()
		result.Bytes += page.Bytes
		if page.SnapshotID != "" {
			result.Saved++
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// indexedResult carries a page result with its input position.
type indexedResult struct {
	position int
	page     PageResult
}

// processURL fetches and extracts a single URL.
func (r *Runner) processURL(ctx context.Context, rawURL string, kind formscrape.ComponentKind) PageResult {
	page := PageResult{URL: rawURL}

	if r.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			page.Err = formscrape.Errorf(formscrape.EINVALID, "invalid URL %q: %v", rawURL, err)
			return page
		}
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			page.Err = err
			return page
		}
	}

	html, err := FetchWithRetryDelays(ctx, rawURL, r.Fetcher.Fetch, r.Log, r.RetryDelays)
	if err != nil {
		page.Err = err
		return page
	}
	page.Bytes = len(html)
	page.ContentHash = HashContent(html)

	resp, err := r.Extractor.ExtractComponents(html, kind)
	if err != nil {
		page.Err = err
		return page
	}
	page.Response = resp

	if r.Scanner != nil {
		params, err := r.Scanner.Parameters(html, "")
		if err != nil {
			page.Err = err
			return page
		}
		page.Postback = params
	}

	return page
}

// save stores a snapshot for page, recording any failure on the page.
func (r *Runner) save(ctx context.Context, page *PageResult, kind formscrape.ComponentKind) {
	snapshot := &formscrape.Snapshot{
		SourceURL:   page.URL,
		Kind:        kind,
		ContentHash: page.ContentHash,
		Response:    page.Response,
		Postback:    page.Postback,
	}
	if err := r.Snapshots.CreateSnapshot(ctx, snapshot); err != nil {
		page.Err = err
		return
	}
	page.SnapshotID = snapshot.ID
}
