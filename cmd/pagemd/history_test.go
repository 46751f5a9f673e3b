package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagemd"
	main "github.com/fwojciec/pagemd/cmd/pagemd"
	"github.com/fwojciec/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	fetched := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	docs := []*pagemd.Document{
		{ID: "id-2", SourceURL: "https://example.com/b", Title: "Second", Content: "B body", Engine: "trafilatura", FetchedAt: fetched},
		{ID: "id-1", SourceURL: "https://example.com/a", Content: "A body", Engine: "heuristic", FetchedAt: fetched},
	}

	t.Run("lists documents with filter", func(t *testing.T) {
		t.Parallel()

		var got pagemd.DocumentFilter
		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter pagemd.DocumentFilter) ([]*pagemd.Document, error) {
				got = filter
				return docs, nil
			},
		}

		cmd := &main.HistoryCmd{URL: "https://example.com/b", Engine: "trafilatura", Limit: 5}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, got.SourceURL)
		require.NotNil(t, got.Engine)
		assert.Equal(t, "https://example.com/b", *got.SourceURL)
		assert.Equal(t, "trafilatura", *got.Engine)
		assert.Equal(t, 5, got.Limit)

		out := stdout.String()
		assert.Contains(t, out, "id-2  2026-03-14 09:26  trafilatura  Second")
		// Untitled documents are listed by URL.
		assert.Contains(t, out, "id-1  2026-03-14 09:26  heuristic    https://example.com/a")
	})

	t.Run("leaves filter open without arguments", func(t *testing.T) {
		t.Parallel()

		var got pagemd.DocumentFilter
		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter pagemd.DocumentFilter) ([]*pagemd.Document, error) {
				got = filter
				return nil, nil
			},
		}

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))
		assert.Nil(t, got.SourceURL)
		assert.Nil(t, got.Engine)
		assert.Contains(t, stdout.String(), "No saved extractions")
	})

	t.Run("prints full content", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter pagemd.DocumentFilter) ([]*pagemd.Document, error) {
				return docs, nil
			},
		}

		require.NoError(t, (&main.HistoryCmd{Full: true}).Run(deps))
		assert.Contains(t, stdout.String(), "## Document: Second\nB body")
		assert.Contains(t, stdout.String(), "## Document: https://example.com/a\nA body")
	})

	t.Run("shows one document", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentByIDFn: func(_ context.Context, id string) (*pagemd.Document, error) {
				assert.Equal(t, "id-2", id)
				return docs[0], nil
			},
		}

		require.NoError(t, (&main.HistoryCmd{Show: "id-2"}).Run(deps))
		assert.Equal(t, "# Second\n\nSource: https://example.com/b\n\nB body\n", stdout.String())
	})

	t.Run("deletes one document", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			DeleteDocumentFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		require.NoError(t, (&main.HistoryCmd{Delete: "id-1"}).Run(deps))
		assert.Equal(t, "id-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted id-1")
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Documents = &mock.DocumentService{
			DeleteDocumentFn: func(_ context.Context, id string) error {
				return pagemd.Errorf(pagemd.ENOTFOUND, "document not found")
			},
		}

		err := (&main.HistoryCmd{Delete: "missing"}).Run(deps)
		assert.Equal(t, pagemd.ENOTFOUND, pagemd.ErrorCode(err))
		assert.Equal(t, "error: document not found\n", stderr.String())
	})
}
