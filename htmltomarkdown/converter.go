// Package htmltomarkdown converts HTML with the html-to-markdown library.
// It backs the alternate extraction engines and the library conversion mode.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
)

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links and images against domain.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", pagemd.Errorf(pagemd.EEMPTY, "empty HTML input")
	}

	result, err := c.conv.ConvertString(input, c.options(c.domain)...)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// ConvertNode transforms a parsed node into Markdown, resolving relative
// links against pageURL when it is set.
func (c *Converter) ConvertNode(n *html.Node, pageURL string) (string, error) {
	domain := c.domain
	if pageURL != "" {
		domain = pageURL
	}

	result, err := c.conv.ConvertNode(n, c.options(domain)...)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(result)), nil
}

func (c *Converter) options(domain string) []converter.ConvertOptionFunc {
	if domain == "" {
		return nil
	}
	return []converter.ConvertOptionFunc{converter.WithDomain(domain)}
}
