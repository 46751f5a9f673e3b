package pagemd

import "context"

// BatchProgress reports progress during a batch extraction run.
type BatchProgress struct {
	URL       string
	Title     string
	Completed int
	Total     int
	Error     error
}

// BatchProgressFunc is called as each URL of a batch finishes.
type BatchProgressFunc func(BatchProgress)

// URLSource lists article URLs to extract, e.g. from an RSS or Atom feed.
type URLSource interface {
	Discover(ctx context.Context, sourceURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// URLFilter remembers URLs already scheduled in a batch.
type URLFilter interface {
	// Add records url and reports whether it was possibly seen before.
	Add(url string) bool
}
