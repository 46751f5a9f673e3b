package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingExtractor implements pagemd.Extractor.
var _ pagemd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs each extraction with the
// size of the produced markdown.
type LoggingExtractor struct {
	next   pagemd.Extractor
	engine string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The engine name is
// attached to every log record.
func NewLoggingExtractor(next pagemd.Extractor, engine string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, engine: engine, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html string, url string) (article *pagemd.Article, err error) {
	defer func(begin time.Time) {
		var title string
		var chars int
		if article != nil {
			title = article.Title
			chars = len(article.Content)
		}
		e.logger.Log(context.Background(), level(err), "extract",
			"engine", e.engine,
			"url", url,
			"bytes", len(html),
			"title", title,
			"chars", chars,
			"duration", time.Since(begin),
			"code", pagemd.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, url)
}
