package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingAsker implements pagemd.Asker.
var _ pagemd.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging. Questions are logged by length
// only.
type LoggingAsker struct {
	next   pagemd.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next pagemd.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker.
func (a *LoggingAsker) Ask(ctx context.Context, article *pagemd.Article, question string) (answer string, err error) {
	defer func(begin time.Time) {
		var url string
		if article != nil {
			url = article.URL
		}
		a.logger.Log(ctx, level(err), "ask",
			"url", url,
			"question_chars", len(question),
			"chars", len(answer),
			"duration", time.Since(begin),
			"code", pagemd.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, article, question)
}
