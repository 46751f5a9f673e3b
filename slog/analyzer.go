package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingAnalyzer implements pagemd.Analyzer.
var _ pagemd.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   pagemd.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagemd.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, article *pagemd.Article) (analysis string, err error) {
	defer func(begin time.Time) {
		var url string
		if article != nil {
			url = article.URL
		}
		a.logger.Log(ctx, level(err), "analyze",
			"url", url,
			"chars", len(analysis),
			"duration", time.Since(begin),
			"code", pagemd.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, article)
}
