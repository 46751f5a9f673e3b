package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingURLSource implements pagemd.URLSource.
var _ pagemd.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with logging.
type LoggingURLSource struct {
	next   pagemd.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next pagemd.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the number of URLs found.
func (s *LoggingURLSource) Discover(ctx context.Context, sourceURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, level(err), "discover",
			"url", sourceURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, sourceURL)
}
