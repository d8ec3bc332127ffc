package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sigedit"
)

// Ensure LoggingTemplateService implements sigedit.TemplateService.
var _ sigedit.TemplateService = (*LoggingTemplateService)(nil)

// LoggingTemplateService wraps a TemplateService with logging.
type LoggingTemplateService struct {
	next   sigedit.TemplateService
	logger *slog.Logger
}

// NewLoggingTemplateService creates a new LoggingTemplateService.
func NewLoggingTemplateService(next sigedit.TemplateService, logger *slog.Logger) *LoggingTemplateService {
	return &LoggingTemplateService{next: next, logger: logger}
}

// CreateTemplate delegates to the wrapped service and logs the assigned ID.
func (s *LoggingTemplateService) CreateTemplate(ctx context.Context, tmpl *sigedit.Template) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("template save",
			"id", tmpl.ID,
			"name", tmpl.Name,
			"bytes", len(tmpl.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateTemplate(ctx, tmpl)
}

// FindTemplateByID delegates to the wrapped service and logs the lookup.
func (s *LoggingTemplateService) FindTemplateByID(ctx context.Context, id int64) (tmpl *sigedit.Template, err error) {
	defer func(begin time.Time) {
		s.logger.Info("template find",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTemplateByID(ctx, id)
}

// FindTemplates delegates to the wrapped service and logs the result count.
func (s *LoggingTemplateService) FindTemplates(ctx context.Context, filter sigedit.TemplateFilter) (templates []*sigedit.Template, err error) {
	defer func(begin time.Time) {
		s.logger.Info("template list",
			"count", len(templates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTemplates(ctx, filter)
}
