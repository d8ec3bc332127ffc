package sigedit

import (
	"context"
	"time"
)

// Template is a saved signature document in the template store.
type Template struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	HTML         string    `json:"html"`
	Thumbnail    string    `json:"thumbnail"`
	ContentHash  string    `json:"contentHash"`
	LastModified time.Time `json:"lastModified"`
}

// Validate returns an error if the template contains invalid fields.
func (t *Template) Validate() error {
	if t.HTML == "" {
		return Errorf(EINVALID, "template HTML required")
	}
	return nil
}

// TemplateService represents an append-only store of templates.
type TemplateService interface {
	// CreateTemplate saves a template and assigns its ID. An empty name
	// defaults to "Template <n>".
	CreateTemplate(ctx context.Context, tmpl *Template) error

	// FindTemplateByID retrieves a template by ID.
	// Returns ENOTFOUND if template does not exist.
	FindTemplateByID(ctx context.Context, id int64) (*Template, error)

	// FindTemplates retrieves templates in creation order.
	FindTemplates(ctx context.Context, filter TemplateFilter) ([]*Template, error)
}

// TemplateFilter represents a filter for FindTemplates.
type TemplateFilter struct {
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
