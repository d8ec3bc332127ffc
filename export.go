package sigedit

import (
	"context"
	"strings"
	"time"
)

// FormatHTML is the only supported export format.
const FormatHTML = "html"

// ExportResult is a downloadable signature document.
type ExportResult struct {
	Content   string
	Filename  string
	MediaType string
}

// Export packages html for download in the given format.
// Returns EUNSUPPORTED for any format other than "html".
func Export(html, format string, now time.Time) (*ExportResult, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = FormatHTML
	}
	if f != FormatHTML {
		return nil, Errorf(EUNSUPPORTED, "export format %q not supported", format)
	}
	if html == "" {
		return nil, Errorf(EINVALID, "no signature to download")
	}
	return &ExportResult{
		Content:   html,
		Filename:  "signature-" + now.Format("2006-01-02") + ".html",
		MediaType: "text/html",
	}, nil
}

// ExportWriter writes exported documents somewhere the user can pick them up.
type ExportWriter interface {
	// WriteExport stores the export and returns its location.
	WriteExport(ctx context.Context, export *ExportResult) (string, error)
}

// Previewer renders signature HTML for display in a terminal.
type Previewer interface {
	Preview(html string) (string, error)
}

// Sanitizer removes unsafe markup before a preview is rendered.
type Sanitizer interface {
	Sanitize(html string) string
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// Thumbnailer renders signature HTML to a small image.
type Thumbnailer interface {
	// Thumbnail returns the rendering as a data URI.
	Thumbnail(ctx context.Context, html string) (string, error)
}
