// Package rod provides a formscrape.Fetcher that renders pages in headless
// Chrome, for forms that are assembled by JavaScript after load.
package rod

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/formscrape"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultFetchTimeout bounds a single page render.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultRecycleAfter is the number of renders served by one Chrome
	// process before a fresh one is launched.
	DefaultRecycleAfter = 75
)

// Ensure Fetcher implements formscrape.Fetcher at compile time.
var _ formscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
//
// Long batches grow Chrome's memory without bound, so after recycleAfter
// renders the Fetcher launches a new process for subsequent renders. The
// old process is shut down once the renders still using it have finished.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout      time.Duration
	recycleAfter int

	mu       sync.Mutex
	current  *chrome
	rendered int // renders started on current
	closed   bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page render timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter sets how many pages are rendered before Chrome is
// restarted. Zero or less disables recycling.
func WithRecycleAfter(n int) Option {
	return func(f *Fetcher) {
		f.recycleAfter = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		recycleAfter: DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	c, err := launchChrome()
	if err != nil {
		return nil, err
	}
	f.current = c

	return f, nil
}

// Fetch navigates to the URL, waits for the load event and returns the
// rendered document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c, err := f.acquire()
	if err != nil {
		return "", err
	}
	defer f.release(c)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// acquire returns the process the next render should use, replacing the
// current one first when it has served recycleAfter renders. A failed
// relaunch keeps the current process in service.
func (f *Fetcher) acquire() (*chrome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, formscrape.Errorf(formscrape.EINVALID, "fetcher is closed")
	}

	if f.recycleAfter > 0 && f.rendered >= f.recycleAfter {
		if next, err := launchChrome(); err == nil {
			f.retire(f.current)
			f.current = next
			f.rendered = 0
		}
	}

	f.current.active++
	f.rendered++
	return f.current, nil
}

// release marks a render on c as finished.
func (f *Fetcher) release(c *chrome) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c.active--
	if c.retired && c.active == 0 {
		_ = c.shutdown()
	}
}

// retire shuts c down now if it is idle, or after its last render.
// Must be called with mu held.
func (f *Fetcher) retire(c *chrome) {
	c.retired = true
	if c.active == 0 {
		_ = c.shutdown()
	}
}

// LauncherPID returns the process ID of the Chrome process serving new
// renders, or 0 after Close.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0
	}
	return f.current.pid()
}

// Close releases browser resources. Renders still in flight keep their
// process until they finish. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	c := f.current
	c.retired = true
	if c.active == 0 {
		return c.shutdown()
	}
	return nil
}
