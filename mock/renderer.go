package mock

import "github.com/fwojciec/pagemd"

var _ pagemd.HTMLRenderer = (*HTMLRenderer)(nil)

// HTMLRenderer is a mock implementation of pagemd.HTMLRenderer.
type HTMLRenderer struct {
	RenderHTMLFn func(markdown string) string
}

func (r *HTMLRenderer) RenderHTML(markdown string) string {
	return r.RenderHTMLFn(markdown)
}
