package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sigedit"
)

// Ensure LoggingThumbnailer implements sigedit.Thumbnailer.
var _ sigedit.Thumbnailer = (*LoggingThumbnailer)(nil)

// LoggingThumbnailer wraps a Thumbnailer with debug logging.
type LoggingThumbnailer struct {
	next   sigedit.Thumbnailer
	logger *slog.Logger
}

// NewLoggingThumbnailer creates a new LoggingThumbnailer.
func NewLoggingThumbnailer(next sigedit.Thumbnailer, logger *slog.Logger) *LoggingThumbnailer {
	return &LoggingThumbnailer{next: next, logger: logger}
}

// Thumbnail logs the rendering and delegates to the wrapped thumbnailer.
func (t *LoggingThumbnailer) Thumbnail(ctx context.Context, html string) (uri string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("thumbnail",
			"html_bytes", len(html),
			"uri_bytes", len(uri),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Thumbnail(ctx, html)
}
