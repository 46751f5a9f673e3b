package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagemd"
	main "github.com/fwojciec/pagemd/cmd/pagemd"
	"github.com/fwojciec/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints analysis of extracted article", func(t *testing.T) {
		t.Parallel()

		var got *pagemd.Article
		deps, stdout, _ := newDeps()
		deps.Fetcher = fetcherReturning("<html></html>")
		deps.Extractor = extractorReturning(article())
		deps.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, a *pagemd.Article) (string, error) {
				got = a
				return "Strong headline.", nil
			},
		}

		require.NoError(t, (&main.AnalyzeCmd{URL: pageURL}).Run(deps))
		assert.Equal(t, article(), got)
		assert.Equal(t, "Strong headline.\n", stdout.String())
	})

	t.Run("returns analyzer error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Fetcher = fetcherReturning("<html></html>")
		deps.Extractor = extractorReturning(article())
		deps.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, a *pagemd.Article) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		err := (&main.AnalyzeCmd{URL: pageURL}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "quota exceeded")
		assert.Empty(t, stdout.String())
	})
}
