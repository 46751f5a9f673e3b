// Package rod fetches JavaScript-rendered pages with a headless browser.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagemd"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds one page load, including JavaScript rendering.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements pagemd.Fetcher at compile time.
var _ pagemd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Use it for article pages that build their content client-side.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*fetcherConfig)

type fetcherConfig struct {
	timeout time.Duration
	manager []ManagerOption
}

// WithFetchTimeout sets the timeout for a single page load.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *fetcherConfig) {
		c.timeout = d
	}
}

// WithRecycleAfter sets how many pages the browser renders before it is
// replaced with a fresh process.
func WithRecycleAfter(pages int64) Option {
	return func(c *fetcherConfig) {
		c.manager = append(c.manager, WithMaxPages(pages))
	}
}

// WithBrowser uses the Chrome or Chromium binary at path.
func WithBrowser(path string) Option {
	return func(c *fetcherConfig) {
		c.manager = append(c.manager, WithBrowserBin(path))
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	cfg := fetcherConfig{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	manager, err := NewBrowserManager(cfg.manager...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager, timeout: cfg.timeout}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", pagemd.Errorf(pagemd.EINVALID, "fetcher is closed")
	}
	if url == "" {
		return "", pagemd.Errorf(pagemd.EEMPTY, "URL is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browser, release, err := f.manager.Acquire()
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINVALID, "fetcher is closed")
	}
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer release()
	defer page.Close()

	page = page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, contextErr(ctx, err))
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("loading %s: %w", url, contextErr(ctx, err))
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, contextErr(ctx, err))
	}
	return html, nil
}

// contextErr prefers the context's error so callers can match
// context.DeadlineExceeded and context.Canceled.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Recycled returns how many times the browser has been replaced.
func (f *Fetcher) Recycled() int {
	return f.manager.Recycled()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
