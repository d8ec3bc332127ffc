package mock

import (
	"context"

	"github.com/fwojciec/sigedit"
)

var _ sigedit.TemplateService = (*TemplateService)(nil)

// TemplateService is a mock implementation of sigedit.TemplateService.
type TemplateService struct {
	CreateTemplateFn   func(ctx context.Context, tmpl *sigedit.Template) error
	FindTemplateByIDFn func(ctx context.Context, id int64) (*sigedit.Template, error)
	FindTemplatesFn    func(ctx context.Context, filter sigedit.TemplateFilter) ([]*sigedit.Template, error)
}

func (s *TemplateService) CreateTemplate(ctx context.Context, tmpl *sigedit.Template) error {
	return s.CreateTemplateFn(ctx, tmpl)
}

func (s *TemplateService) FindTemplateByID(ctx context.Context, id int64) (*sigedit.Template, error) {
	return s.FindTemplateByIDFn(ctx, id)
}

func (s *TemplateService) FindTemplates(ctx context.Context, filter sigedit.TemplateFilter) ([]*sigedit.Template, error) {
	return s.FindTemplatesFn(ctx, filter)
}
