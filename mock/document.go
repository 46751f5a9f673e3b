package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of pagemd.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *pagemd.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*pagemd.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter pagemd.DocumentFilter) ([]*pagemd.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *pagemd.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pagemd.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter pagemd.DocumentFilter) ([]*pagemd.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
