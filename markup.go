package sigedit

import (
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TextSpan is a candidate text found in markup, with a structural hint of
// where it was found.
type TextSpan struct {
	Text    string
	Locator string
}

// ImageNode is an <img> element as found in markup, after it has been
// tagged with its identifier.
type ImageNode struct {
	ID     int
	Src    string
	Alt    string
	Width  string
	Height string
}

// Markup is a loaded HTML document that can be scanned for fields and images.
// Implementations differ in how they traverse the document (tree walk or
// linear scan) but must yield results in document order.
type Markup interface {
	// ExtractText yields trimmed candidate texts longer than two characters.
	// The sequence is consumed once; ranging over it again yields nothing.
	ExtractText() iter.Seq[TextSpan]

	// ExtractImages enumerates images and writes a data-image-id marker
	// attribute onto each, numbered from 1.
	ExtractImages() []ImageNode

	// HTML returns the current serialization of the document, including any
	// markers written by ExtractImages.
	HTML() string
}

// MarkupLoader loads raw HTML into a traversable Markup.
type MarkupLoader interface {
	// Load returns EPARSE if the input is not markup at all and
	// EUNAVAILABLE if this loader cannot handle the input.
	Load(html string) (Markup, error)
}

// ImageIDAttr is the marker attribute written onto every extracted image.
const ImageIDAttr = "data-image-id"

// CheckMarkup returns EPARSE unless html contains a tag-opening and a
// tag-closing character.
func CheckMarkup(html string) error {
	if strings.TrimSpace(html) == "" {
		return Errorf(EPARSE, "empty HTML input")
	}
	if !strings.Contains(html, "<") || !strings.Contains(html, ">") {
		return Errorf(EPARSE, "input does not contain HTML markup")
	}
	return nil
}

// KeepText reports whether a trimmed text is long enough to be a candidate.
func KeepText(text string) bool {
	return utf8.RuneCountInString(text) > 2 && strings.TrimSpace(text) != ""
}

// ParseDimension reads the leading decimal digits of a width or height
// attribute ("120", "120px"). Missing, non-numeric and zero values yield
// DefaultDimension.
func ParseDimension(v string) int {
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil || n <= 0 {
		return DefaultDimension
	}
	return n
}
