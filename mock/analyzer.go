package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pagemd.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, article *pagemd.Article) (string, error)
}

func (a *Analyzer) Analyze(ctx context.Context, article *pagemd.Article) (string, error) {
	return a.AnalyzeFn(ctx, article)
}
