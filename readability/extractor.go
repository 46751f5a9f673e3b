// Package readability extracts articles with go-readability, the Mozilla
// Readability port.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// The readable HTML is converted to markdown by the injected converter.
type Extractor struct {
	converter pagemd.Converter
	minLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinContentLength sets the minimum markdown length in characters.
func WithMinContentLength(n int) Option {
	return func(e *Extractor) {
		e.minLength = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(converter pagemd.Converter, opts ...Option) *Extractor {
	e := &Extractor{converter: converter, minLength: pagemd.DefaultMinContentLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content as markdown.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*pagemd.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemd.Errorf(pagemd.EEMPTY, "empty HTML input")
	}
	if strings.TrimSpace(pageURL) == "" {
		return nil, pagemd.Errorf(pagemd.EEMPTY, "empty URL")
	}

	// Relative links are only resolved for absolute page URLs.
	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINSUFFICIENT, "readability: %v", err)
	}

	var content string
	if strings.TrimSpace(article.Content) != "" {
		if content, err = e.converter.Convert(article.Content); err != nil {
			return nil, err
		}
	}

	if n := len([]rune(content)); n < e.minLength {
		return nil, pagemd.Errorf(pagemd.EINSUFFICIENT,
			"readability extracted %d characters, need %d", n, e.minLength)
	}

	title := strings.Join(strings.Fields(article.Title), " ")
	if title == "" {
		title = pagemd.DefaultTitle
	}

	return &pagemd.Article{Title: title, Content: content, URL: pageURL}, nil
}
