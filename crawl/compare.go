package crawl

import (
	"unicode/utf8"

	"github.com/fwojciec/pagemd"
)

// Engine is a named extractor taking part in a comparison.
type Engine struct {
	Name      string
	Extractor pagemd.Extractor
}

// Comparison is the outcome of one engine on one page.
type Comparison struct {
	Engine  string
	Article *pagemd.Article
	Chars   int
	Err     error
}

// Compare runs every engine on the same HTML and returns the outcomes in
// engine order. An engine failure is recorded, not returned.
func Compare(html, url string, engines []Engine) []Comparison {
	out := make([]Comparison, 0, len(engines))
	for _, e := range engines {
		c := Comparison{Engine: e.Name}
		c.Article, c.Err = e.Extractor.Extract(html, url)
		if c.Err == nil {
			c.Chars = utf8.RuneCountInString(c.Article.Content)
		}
		out = append(out, c)
	}
	return out
}

// ContentDiffers compares content extracted from HTTP-fetched HTML with
// content extracted from browser-rendered HTML.
// Returns true if the rendered content is more than 50% longer, suggesting
// JavaScript rendering adds meaningful content. Also returns true on
// extraction errors.
func ContentDiffers(httpHTML, renderedHTML, url string, extractor pagemd.Extractor) bool {
	httpResult, err := extractor.Extract(httpHTML, url)
	if err != nil {
		return true
	}

	renderedResult, err := extractor.Extract(renderedHTML, url)
	if err != nil {
		return true
	}

	httpLen := len(httpResult.Content)
	renderedLen := len(renderedResult.Content)

	if httpLen == 0 && renderedLen > 0 {
		return true
	}

	return float64(renderedLen) > float64(httpLen)*1.5
}
