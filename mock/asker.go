package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.Asker = (*Asker)(nil)

// Asker is a mock implementation of pagemd.Asker.
type Asker struct {
	AskFn func(ctx context.Context, article *pagemd.Article, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, article *pagemd.Article, question string) (string, error) {
	return a.AskFn(ctx, article, question)
}
