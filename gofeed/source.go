// Package gofeed discovers article URLs from RSS, Atom and JSON feeds.
package gofeed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/mmcdole/gofeed"
)

// Ensure FeedSource implements pagemd.URLSource at compile time.
var _ pagemd.URLSource = (*FeedSource)(nil)

// FeedSource lists the article links of a feed.
type FeedSource struct {
	client    *http.Client
	userAgent string
}

// Option configures a FeedSource.
type Option func(*FeedSource)

// WithHTTPClient sets the client used to download feeds.
func WithHTTPClient(c *http.Client) Option {
	return func(s *FeedSource) {
		s.client = c
	}
}

// WithUserAgent sets the User-Agent header sent with feed requests.
func WithUserAgent(ua string) Option {
	return func(s *FeedSource) {
		s.userAgent = ua
	}
}

// NewFeedSource creates a new FeedSource.
func NewFeedSource(opts ...Option) *FeedSource {
	s := &FeedSource{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Discover downloads the feed at feedURL and returns its item links in feed
// order without duplicates. Relative links resolve against the feed URL.
// Returns ENOTFOUND when the feed has no item links.
func (s *FeedSource) Discover(ctx context.Context, feedURL string) ([]string, error) {
	base, err := url.Parse(feedURL)
	if err != nil || !base.IsAbs() {
		return nil, pagemd.Errorf(pagemd.EINVALID, "invalid feed URL: %q", feedURL)
	}

	parser := gofeed.NewParser()
	parser.Client = s.client
	if s.userAgent != "" {
		parser.UserAgent = s.userAgent
	}

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, pagemd.Errorf(pagemd.ENOTFOUND, "feed not found: %s", feedURL)
		}
		return nil, fmt.Errorf("parsing feed %s: %w", feedURL, err)
	}

	links := Links(feed, base)
	if len(links) == 0 {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "feed contains no article links: %s", feedURL)
	}
	return links, nil
}

// Links returns the distinct absolute item links of feed.
func Links(feed *gofeed.Feed, base *url.URL) []string {
	if feed == nil {
		return nil
	}
	seen := make(map[string]bool)
	var links []string
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		link := strings.TrimSpace(item.Link)
		if link == "" && len(item.Links) > 0 {
			link = strings.TrimSpace(item.Links[0])
		}
		if link == "" {
			continue
		}
		ref, err := url.Parse(link)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref).String()
		if seen[abs] {
			continue
		}
		seen[abs] = true
		links = append(links, abs)
	}
	return links
}
