package mock

import (
	"context"

	"github.com/fwojciec/sigedit"
)

var _ sigedit.ExportWriter = (*ExportWriter)(nil)

// ExportWriter is a mock implementation of sigedit.ExportWriter.
type ExportWriter struct {
	WriteExportFn func(ctx context.Context, export *sigedit.ExportResult) (string, error)
}

func (w *ExportWriter) WriteExport(ctx context.Context, export *sigedit.ExportResult) (string, error) {
	return w.WriteExportFn(ctx, export)
}

var _ sigedit.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of sigedit.Previewer.
type Previewer struct {
	PreviewFn func(html string) (string, error)
}

func (p *Previewer) Preview(html string) (string, error) {
	return p.PreviewFn(html)
}

var _ sigedit.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of sigedit.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

var _ sigedit.Converter = (*Converter)(nil)

// Converter is a mock implementation of sigedit.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ sigedit.Thumbnailer = (*Thumbnailer)(nil)

// Thumbnailer is a mock implementation of sigedit.Thumbnailer.
type Thumbnailer struct {
	ThumbnailFn func(ctx context.Context, html string) (string, error)
}

func (t *Thumbnailer) Thumbnail(ctx context.Context, html string) (string, error) {
	return t.ThumbnailFn(ctx, html)
}
