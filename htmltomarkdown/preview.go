package htmltomarkdown

import (
	"strings"

	"github.com/fwojciec/sigedit"
)

// Ensure Previewer implements sigedit.Previewer at compile time.
var _ sigedit.Previewer = (*Previewer)(nil)

// Previewer sanitizes signature HTML and renders it as Markdown.
type Previewer struct {
	Sanitizer sigedit.Sanitizer
	Converter sigedit.Converter
}

// NewPreviewer creates a Previewer using sanitizer and a new Converter.
func NewPreviewer(sanitizer sigedit.Sanitizer) *Previewer {
	return &Previewer{Sanitizer: sanitizer, Converter: NewConverter()}
}

// Preview returns a Markdown rendering of html. Returns EINVALID if nothing
// is left after sanitizing.
func (p *Previewer) Preview(html string) (string, error) {
	if p.Sanitizer != nil {
		html = p.Sanitizer.Sanitize(html)
	}
	if strings.TrimSpace(html) == "" {
		return "", sigedit.Errorf(sigedit.EINVALID, "nothing to preview")
	}

	md, err := p.Converter.Convert(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md) + "\n", nil
}
