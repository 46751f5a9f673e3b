// Package trafilatura extracts articles with go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

// NewExtractor creates a new Extractor that converts the extracted node
// with converter.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINSUFFICIENT, "trafilatura: %v", err)
	}

	var content string
	if result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(contentHTML) != "" {
			if content, err = e.converter.Convert(contentHTML); err != nil {
				return nil, err
			}
		}
	}

	if n := len([]rune(content)); n < e.minLength {
		return nil, pagemd.Errorf(pagemd.EINSUFFICIENT,
			"trafilatura extracted %d characters, need %d", n, e.minLength)
	}

	title := strings.Join(strings.Fields(result.Metadata.Title), " ")
	if title == "" {
		title = pagemd.DefaultTitle
	}

	return &pagemd.Article{Title: title, Content: content, URL: pageURL}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
