// Package goquery provides the tree-based sigedit.MarkupLoader backed by
// goquery and golang.org/x/net/html.
package goquery

import (
	"iter"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigedit"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Loader implements sigedit.MarkupLoader at compile time.
var _ sigedit.MarkupLoader = (*Loader)(nil)

// Loader parses HTML into a goquery document. Malformed markup is handled
// the way browsers do; nothing is reported as an error.
type Loader struct {
	// MaxBytes declines inputs larger than this with EUNAVAILABLE so the
	// caller can fall back to a linear scan. Zero means no limit.
	MaxBytes int
}

// NewLoader creates a new Loader without a size limit.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses html into a tree-backed Markup.
func (l *Loader) Load(rawHTML string) (sigedit.Markup, error) {
	if err := sigedit.CheckMarkup(rawHTML); err != nil {
		return nil, err
	}
	if l.MaxBytes > 0 && len(rawHTML) > l.MaxBytes {
		return nil, sigedit.Errorf(sigedit.EUNAVAILABLE, "HTML is %d bytes, tree loader limit is %d", len(rawHTML), l.MaxBytes)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sigedit.Errorf(sigedit.EUNAVAILABLE, "failed to parse HTML: %v", err)
	}

	return &Markup{doc: doc, raw: rawHTML}, nil
}

// Ensure Markup implements sigedit.Markup at compile time.
var _ sigedit.Markup = (*Markup)(nil)

// Markup is a parsed HTML document.
type Markup struct {
	doc *goquery.Document
	raw string
}

// ExtractText walks text nodes under <body> (or the document element when
// there is none) in document order. Script, style and template contents
// are skipped.
func (m *Markup) ExtractText() iter.Seq[sigedit.TextSpan] {
	root := m.doc.Find("body").First()
	if root.Length() == 0 {
		root = m.doc.Find("html").First()
	}
	nodes := root.Nodes
	consumed := false

	return func(yield func(sigedit.TextSpan) bool) {
		if consumed {
			return
		}
		consumed = true

		var walk func(n *html.Node) bool
		walk = func(n *html.Node) bool {
			switch n.Type {
			case html.TextNode:
				text := strings.TrimSpace(n.Data)
				if !sigedit.KeepText(text) {
					return true
				}
				return yield(sigedit.TextSpan{Text: text, Locator: locator(n.Parent)})
			case html.ElementNode:
				if isOpaque(n) {
					return true
				}
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if !walk(c) {
					return false
				}
			}
			return true
		}

		for _, n := range nodes {
			if !walk(n) {
				return
			}
		}
	}
}

// ExtractImages tags every <img> with a data-image-id marker numbered in
// document order and returns the tagged nodes.
func (m *Markup) ExtractImages() []sigedit.ImageNode {
	var images []sigedit.ImageNode
	m.doc.Find("img").Each(func(i int, s *goquery.Selection) {
		id := i + 1
		s.SetAttr(sigedit.ImageIDAttr, strconv.Itoa(id))

		images = append(images, sigedit.ImageNode{
			ID:     id,
			Src:    s.AttrOr("src", ""),
			Alt:    s.AttrOr("alt", ""),
			Width:  s.AttrOr("width", ""),
			Height: s.AttrOr("height", ""),
		})
	})
	return images
}

// HTML returns the serialized document. Serializing normalizes character
// references, so text values appear either literally or in the form
// html.EscapeString produces.
func (m *Markup) HTML() string {
	out, err := m.doc.Html()
	if err != nil {
		return m.raw
	}
	return out
}

// isOpaque reports whether an element's text content is not human-readable.
func isOpaque(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template, atom.Noscript:
		return true
	}
	return false
}

// locator builds an XPath-like path for an element, indexing each step by
// its position among same-tag siblings: /html[1]/body[1]/p[2].
func locator(n *html.Node) string {
	var parts []string
	for ; n != nil && n.Type == html.ElementNode; n = n.Parent {
		index := 1
		for s := n.PrevSibling; s != nil; s = s.PrevSibling {
			if s.Type == html.ElementNode && s.Data == n.Data {
				index++
			}
		}
		parts = append(parts, n.Data+"["+strconv.Itoa(index)+"]")
	}
	if len(parts) == 0 {
		return "/"
	}

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString("/")
		b.WriteString(parts[i])
	}
	return b.String()
}
