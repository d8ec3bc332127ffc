// Package bluemonday provides the sigedit.Sanitizer used before previews.
package bluemonday

import (
	"github.com/fwojciec/sigedit"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements sigedit.Sanitizer at compile time.
var _ sigedit.Sanitizer = (*Sanitizer)(nil)

// emailStyles are the inline CSS properties email clients commonly honor.
var emailStyles = []string{
	"background-color",
	"border",
	"border-collapse",
	"color",
	"font-family",
	"font-size",
	"font-style",
	"font-weight",
	"height",
	"line-height",
	"margin",
	"padding",
	"text-align",
	"text-decoration",
	"vertical-align",
	"width",
}

// Sanitizer removes scripts, event handlers and other unsafe markup while
// keeping the tables, images and inline styles signatures are built from.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer based on bluemonday's UGC policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: policy()}
}

// Sanitize returns html with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

// policy is bluemonday.UGCPolicy with the additions signatures need:
//
//   - inline styles limited to emailStyles
//   - data: URIs for embedded images
//   - the image marker attribute
//   - legacy table layout attributes
func policy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowStyles(emailStyles...).Globally()
	p.AllowDataURIImages()
	p.AllowAttrs(sigedit.ImageIDAttr).Matching(bluemonday.Integer).OnElements("img")
	p.AllowAttrs("width", "height").Matching(bluemonday.NumberOrPercent).OnElements("img", "table", "td")
	p.AllowAttrs("cellpadding", "cellspacing", "border").Matching(bluemonday.Integer).OnElements("table")
	p.AllowAttrs("bgcolor").Matching(bluemonday.Paragraph).OnElements("table", "tr", "td")

	return p
}
