// Package slog provides log/slog decorators for sigedit services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sigedit"
)

// Ensure LoggingParser implements sigedit.SignatureParser.
var _ sigedit.SignatureParser = (*LoggingParser)(nil)

// LoggingParser wraps a SignatureParser with logging.
type LoggingParser struct {
	next   sigedit.SignatureParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next sigedit.SignatureParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs what was detected.
func (p *LoggingParser) Parse(html string) (sig *sigedit.Signature, err error) {
	defer func(begin time.Time) {
		var elements, images int
		if sig != nil {
			elements, images = len(sig.Elements), len(sig.Images)
		}
		p.logger.Info("parse",
			"bytes", len(html),
			"elements", elements,
			"images", images,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
