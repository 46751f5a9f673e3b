package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of pagemd.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *pagemd.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *pagemd.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
