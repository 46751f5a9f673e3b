package pagemd

import (
	"context"
	"time"
)

// Extraction engines recorded on stored documents.
const (
	EngineHeuristic   = "heuristic"
	EngineReadability = "readability"
	EngineTrafilatura = "trafilatura"
)

// Document represents an extracted article kept in the extraction history.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Engine      string    `json:"engine"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// NewDocument builds a document from an extracted article.
// ID, ContentHash and FetchedAt are assigned by the storage layer.
func NewDocument(article *Article, engine string) *Document {
	return &Document{
		SourceURL: article.URL,
		Title:     article.Title,
		Content:   article.Content,
		Engine:    engine,
	}
}

// Article returns the document as an extracted article.
func (d *Document) Article() *Article {
	return &Article{Title: d.Title, Content: d.Content, URL: d.SourceURL}
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing extracted documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter,
	// most recently fetched first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Engine    *string `json:"engine"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
