package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemd"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagemd.DocumentService = (*DocumentService)(nil)

const documentColumns = "id, source_url, title, content, content_hash, engine, fetched_at"

// DocumentService implements pagemd.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent returns the xxHash of content as 16 hex digits.
func hashContent(content string) string {
	s := strconv.FormatUint(xxhash.Sum64String(content), 16)
	return strings.Repeat("0", 16-len(s)) + s
}

// CreateDocument stores doc, assigning its ID, ContentHash and FetchedAt.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *pagemd.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC().Truncate(time.Second)
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash, doc.Engine,
		doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pagemd.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "document not found")
	}
	return doc, err
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter pagemd.DocumentFilter) ([]*pagemd.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Engine != nil {
		query.WriteString(" AND engine = ?")
		args = append(args, *filter.Engine)
	}

	// rowid breaks ties between documents fetched within the same second.
	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	// SQLite only accepts OFFSET after a LIMIT; -1 means unbounded.
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, max(filter.Offset, 0))
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*pagemd.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagemd.Errorf(pagemd.ENOTFOUND, "document not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*pagemd.Document, error) {
	var doc pagemd.Document
	var fetchedAt string

	if err := row.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
		&doc.ContentHash, &doc.Engine, &fetchedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("document %s: bad fetched_at %q: %w", doc.ID, fetchedAt, err)
	}
	doc.FetchedAt = t
	return &doc, nil
}
