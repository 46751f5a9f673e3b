// Package crawl extracts batches of article URLs.
// It coordinates deduplication, rate-limited fetching with retries,
// extraction and storage of each article.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/bloom"
	"golang.org/x/sync/errgroup"
)

// Defaults for batch runs.
const (
	DefaultConcurrency = 4
	// DefaultRequestsPerSecond is the per-domain request rate.
	DefaultRequestsPerSecond = 2.0
	// filterFalsePositiveRate is the acceptable false positive rate for deduplication.
	filterFalsePositiveRate = 0.001
)

// Crawler extracts a batch of article URLs and stores the results.
type Crawler struct {
	Fetcher      pagemd.Fetcher
	Extractor    pagemd.Extractor
	Writers      []pagemd.DocumentWriter
	TokenCounter pagemd.TokenCounter
	RateLimiter  pagemd.DomainLimiter
	// Filter deduplicates URLs. A Bloom filter sized for the batch is used
	// when nil.
	Filter      pagemd.URLFilter
	Engine      string
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Result holds the outcome of a batch run.
type Result struct {
	Total   int
	Saved   int
	Failed  int
	Skipped int
	Bytes   int
	Tokens  int
}

// item holds the outcome of processing a single URL.
type item struct {
	url     string
	article *pagemd.Article
	err     error
}

// Run extracts every URL and writes the articles to all Writers.
// Duplicate URLs are skipped. Per-URL failures are reported through progress
// and counted in the result; only cancellation of ctx aborts the run.
// The progress callback is never called concurrently.
func (c *Crawler) Run(ctx context.Context, urls []string, progress pagemd.BatchProgressFunc) (*Result, error) {
	filter := c.Filter
	if filter == nil {
		filter = bloom.NewFilter(uint(max(len(urls), 1)), filterFalsePositiveRate)
	}

	var unique []string
	result := &Result{}
	for _, u := range urls {
		if filter.Add(u) {
			result.Skipped++
			continue
		}
		unique = append(unique, u)
	}
	result.Total = len(unique)
	if len(unique) == 0 {
		return result, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	itemCh := make(chan item, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range unique {
			g.Go(func() error {
				itemCh <- c.process(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(itemCh)
	}()

	completed := 0
	for it := range itemCh {
		completed++

		var title string
		if it.err == nil {
			title = it.article.Title
			it.err = c.save(ctx, it.article)
		}

		if it.err != nil {
			result.Failed++
		} else {
			result.Saved++
			result.Bytes += len(it.article.Content)
			result.Tokens += c.countTokens(ctx, it.article.Content)
		}

		if progress != nil {
			progress(pagemd.BatchProgress{
				URL:       it.url,
				Title:     title,
				Completed: completed,
				Total:     result.Total,
				Error:     it.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// process fetches and extracts a single URL.
func (c *Crawler) process(ctx context.Context, rawURL string) item {
	it := item{url: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		it.err = pagemd.Errorf(pagemd.EINVALID, "invalid URL: %q", rawURL)
		return it
	}

	fetch := func(ctx context.Context, target string) (string, error) {
		if c.RateLimiter != nil {
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		return c.Fetcher.Fetch(ctx, target)
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, rawURL, fetch, c.logRetry, delays)
	if err != nil {
		it.err = err
		return it
	}

	it.article, it.err = c.Extractor.Extract(html, rawURL)
	return it
}

func (c *Crawler) save(ctx context.Context, article *pagemd.Article) error {
	doc := pagemd.NewDocument(article, c.Engine)
	for _, w := range c.Writers {
		if err := w.CreateDocument(ctx, doc); err != nil {
			return fmt.Errorf("saving %s: %w", article.URL, err)
		}
	}
	return nil
}

func (c *Crawler) countTokens(ctx context.Context, text string) int {
	if c.TokenCounter == nil {
		return 0
	}
	n, err := c.TokenCounter.CountTokens(ctx, text)
	if err != nil {
		return 0
	}
	return n
}

func (c *Crawler) logRetry(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Warn(fmt.Sprintf(format, args...))
	}
}
