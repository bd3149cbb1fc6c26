package formscrape

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered forms.
type Fetcher interface {
	// Fetch retrieves the markup at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
