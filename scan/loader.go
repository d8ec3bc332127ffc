// Package scan provides the linear-scan fallback sigedit.MarkupLoader. It
// finds text and images with regular expressions over the raw HTML and never
// builds a tree, so it works on inputs the tree loader declines.
package scan

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/sigedit"
)

// Locator is the synthetic placeholder locator given to every text span.
const Locator = "/span[1]"

var (
	textRe = regexp.MustCompile(`>([^<]+)<`)
	imgRe  = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	attrRe = regexp.MustCompile("(?i)([a-z_:][-a-z0-9_:.]*)\\s*=\\s*(?:\"([^\"]*)\"|'([^']*)'|([^\\s\"'=<>`]+))")
	idRe   = regexp.MustCompile(`(?i)\s+` + regexp.QuoteMeta(sigedit.ImageIDAttr) + `\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)
)

// Ensure Loader implements sigedit.MarkupLoader at compile time.
var _ sigedit.MarkupLoader = (*Loader)(nil)

// Loader wraps raw HTML for linear scanning.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns EPARSE if html is not markup.
func (l *Loader) Load(html string) (sigedit.Markup, error) {
	if err := sigedit.CheckMarkup(html); err != nil {
		return nil, err
	}
	return &Markup{html: html}, nil
}

// Ensure Markup implements sigedit.Markup at compile time.
var _ sigedit.Markup = (*Markup)(nil)

// Markup is raw HTML text scanned with regular expressions.
type Markup struct {
	html string
}

// ExtractText yields the trimmed text between each '>' and the next '<'.
// Spans directly inside <script> or <style> are skipped.
func (m *Markup) ExtractText() iter.Seq[sigedit.TextSpan] {
	src := m.html
	consumed := false

	return func(yield func(sigedit.TextSpan) bool) {
		if consumed {
			return
		}
		consumed = true

		for _, loc := range textRe.FindAllStringSubmatchIndex(src, -1) {
			if isRawTextElement(openingTag(src, loc[0])) {
				continue
			}
			text := strings.TrimSpace(src[loc[2]:loc[3]])
			if !sigedit.KeepText(text) {
				continue
			}
			if !yield(sigedit.TextSpan{Text: text, Locator: Locator}) {
				return
			}
		}
	}
}

// ExtractImages rewrites every <img> tag with a fresh data-image-id marker
// and returns the tags' attributes in document order.
func (m *Markup) ExtractImages() []sigedit.ImageNode {
	var images []sigedit.ImageNode
	var b strings.Builder
	last := 0

	for i, loc := range imgRe.FindAllStringIndex(m.html, -1) {
		id := i + 1
		tag := m.html[loc[0]:loc[1]]
		attrs := parseAttrs(tag[len("<img"):])

		images = append(images, sigedit.ImageNode{
			ID:     id,
			Src:    attrs["src"],
			Alt:    attrs["alt"],
			Width:  attrs["width"],
			Height: attrs["height"],
		})

		b.WriteString(m.html[last:loc[0]])
		b.WriteString(tag[:len("<img")])
		b.WriteString(` ` + sigedit.ImageIDAttr + `="` + strconv.Itoa(id) + `"`)
		b.WriteString(idRe.ReplaceAllString(tag[len("<img"):], ""))
		last = loc[1]
	}

	if images != nil {
		b.WriteString(m.html[last:])
		m.html = b.String()
	}
	return images
}

// HTML returns the current text, including image markers.
func (m *Markup) HTML() string {
	return m.html
}

// openingTag returns the name of the tag that ends at position gt, or ""
// for closing tags, comments and declarations.
func openingTag(src string, gt int) string {
	lt := strings.LastIndexByte(src[:gt], '<')
	if lt < 0 {
		return ""
	}
	tag := src[lt+1 : gt]
	end := 0
	for end < len(tag) && isNameByte(tag[end]) {
		end++
	}
	return strings.ToLower(tag[:end])
}

func isRawTextElement(name string) bool {
	return name == "script" || name == "style"
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// parseAttrs reads name=value pairs from the inside of a tag. Names are
// lower-cased; the first occurrence of a name wins.
func parseAttrs(s string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(s, -1) {
		name := strings.ToLower(m[1])
		if _, ok := attrs[name]; ok {
			continue
		}
		switch {
		case m[2] != "":
			attrs[name] = m[2]
		case m[3] != "":
			attrs[name] = m[3]
		default:
			attrs[name] = m[4]
		}
	}
	return attrs
}
