package mock

import "github.com/fwojciec/pagemd"

var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemd.Extractor.
type Extractor struct {
	ExtractFn func(html string, url string) (*pagemd.Article, error)
}

func (e *Extractor) Extract(html string, url string) (*pagemd.Article, error) {
	return e.ExtractFn(html, url)
}
