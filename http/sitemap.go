package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagemd"
)

// Ensure SitemapSource implements pagemd.URLSource at compile time.
var _ pagemd.URLSource = (*SitemapSource)(nil)

// SitemapSource lists article URLs published in a site's sitemaps.
type SitemapSource struct {
	client *http.Client
}

// NewSitemapSource creates a SitemapSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client}
}

// Discover returns the page URLs listed for sourceURL.
//
// A sourceURL ending in .xml is read as a sitemap or sitemap index.
// Otherwise sitemaps are located through robots.txt, falling back to
// /sitemap.xml, and only URLs under sourceURL's path are returned.
// Returns an empty slice (not nil) if no sitemap is found.
func (s *SitemapSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(sourceURL)
	if err != nil || base.Host == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "invalid sitemap URL %q", sourceURL)
	}

	var sitemaps []string
	prefix := ""
	if strings.HasSuffix(base.Path, ".xml") {
		sitemaps = []string{base.String()}
	} else {
		if base.Path != "/" {
			prefix = base.Path
		}
		root := *base
		root.Path, root.RawQuery, root.Fragment = "", "", ""
		if sitemaps, err = s.locate(ctx, &root); err != nil {
			return nil, err
		}
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seen := make(map[string]bool)
	for _, sitemap := range sitemaps {
		found, err := s.read(ctx, sitemap, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			if seen[u] || (prefix != "" && !underPath(u, prefix)) {
				continue
			}
			seen[u] = true
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// underPath reports whether rawURL's path lies under prefix, respecting
// segment boundaries: /blog matches /blog/post but not /blogroll.
func underPath(rawURL, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(u.Path, prefix)
}

// locate finds sitemap URLs in robots.txt or falls back to /sitemap.xml.
func (s *SitemapSource) locate(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps, err := s.fromRobots(ctx, robots.String()); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	exists, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{fallback}, nil
	}
	return nil, nil
}

// fromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapSource) fromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > len("sitemap:") && strings.EqualFold(line[:len("sitemap:")], "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// read parses one sitemap, following sitemap indexes recursively.
func (s *SitemapSource) read(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag != "sitemapindex" {
		return locs(root, "url"), nil
	}

	var urls []string
	for _, child := range locs(root, "sitemap") {
		found, err := s.read(ctx, child, seen)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}
	return urls, nil
}

// locs returns the trimmed <loc> text of every child element named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func (s *SitemapSource) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: target}
	}
	return resp.Body, nil
}

func (s *SitemapSource) exists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
