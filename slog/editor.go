package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sigedit"
)

// Ensure LoggingEditor implements sigedit.SignatureEditor.
var _ sigedit.SignatureEditor = (*LoggingEditor)(nil)

// LoggingEditor wraps a SignatureEditor with logging.
type LoggingEditor struct {
	next   sigedit.SignatureEditor
	logger *slog.Logger
}

// NewLoggingEditor creates a new LoggingEditor.
func NewLoggingEditor(next sigedit.SignatureEditor, logger *slog.Logger) *LoggingEditor {
	return &LoggingEditor{next: next, logger: logger}
}

// Apply delegates to the wrapped editor and logs the size of the edit.
func (e *LoggingEditor) Apply(sig *sigedit.Signature, edits *sigedit.Edits) (out *sigedit.Signature, err error) {
	defer func(begin time.Time) {
		var fields, images int
		if edits != nil {
			fields, images = len(edits.Fields), len(edits.Images)
		}
		e.logger.Info("edit",
			"fields", fields,
			"images", images,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Apply(sig, edits)
}
