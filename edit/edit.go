// Package edit applies field and image edits to signature HTML.
//
// Substitution is textual and unscoped: every literal occurrence of an
// element's current value is replaced, including coincidental occurrences
// outside the position the element was detected at.
package edit

import (
	"html"
	"regexp"
	"slices"
	"strings"

	"github.com/fwojciec/sigedit"
)

// Ensure Editor implements sigedit.SignatureEditor at compile time.
var _ sigedit.SignatureEditor = (*Editor)(nil)

// Editor applies edit transactions.
type Editor struct{}

// NewEditor creates a new Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Apply rewrites sig.HTMLContent with edits and returns the new signature.
// Edits referring to unknown IDs are ignored. An edit whose current value or
// image reference does not occur in the HTML is not applied, and the element
// or image keeps its previous value so the model never claims a change the
// HTML lacks. Use Unapplied to list such edits.
func (e *Editor) Apply(sig *sigedit.Signature, edits *sigedit.Edits) (*sigedit.Signature, error) {
	if sig == nil {
		return nil, sigedit.Errorf(sigedit.EINVALID, "signature required")
	}

	out := sig.Clone()
	if edits.IsEmpty() {
		return out, nil
	}

	content := sig.HTMLContent

	for i, el := range out.Elements {
		value, ok := edits.Fields[el.ID]
		if !ok {
			continue
		}
		next := ReplaceText(content, el.Value, value)
		if next == content && el.Value != value {
			continue
		}
		content = next
		out.Elements[i].Value = value
	}

	for i, img := range out.Images {
		upd, ok := edits.Images[img.ID]
		if !ok || upd.Embedded == "" {
			continue
		}
		next := ReplaceImage(content, img, upd.Embedded)
		if next == content && img.Embedded != upd.Embedded {
			continue
		}
		content = next
		out.Images[i].Src = upd.Embedded
		out.Images[i].Embedded = upd.Embedded
		if upd.Dimensions.Width > 0 && upd.Dimensions.Height > 0 {
			out.Images[i].Dimensions = upd.Dimensions
		}
	}

	out.HTMLContent = content
	return out, nil
}

// ReplaceText replaces every occurrence of old in content with new. When old
// contains characters HTML escapes, its escaped form is replaced with the
// escaped new value as well, since serialized markup stores "&" as "&amp;".
func ReplaceText(content, old, new string) string {
	if old == "" || old == new {
		return content
	}
	content = strings.ReplaceAll(content, old, new)

	if escaped := html.EscapeString(old); escaped != old {
		content = strings.ReplaceAll(content, escaped, html.EscapeString(new))
	}
	return content
}

// ReplaceImage points every src attribute referencing img at embedded.
// The original markup's quoting is unknown, so double-quoted, single-quoted
// and unquoted attributes are tried for both the recorded source and the
// current embedded value; patterns that do not occur are no-ops. References
// containing "&" are also tried in their escaped form.
func ReplaceImage(content string, img sigedit.Image, embedded string) string {
	replacement := `src="` + html.EscapeString(embedded) + `"`

	for _, ref := range imageRefs(img) {
		content = strings.ReplaceAll(content, `src="`+ref+`"`, replacement)
		content = strings.ReplaceAll(content, `src='`+ref+`'`, replacement)

		// An unquoted value ends at whitespace, "/" or ">", which is kept.
		unquoted := regexp.MustCompile(`src=` + regexp.QuoteMeta(ref) + `([\s/>])`)
		content = unquoted.ReplaceAllStringFunc(content, func(m string) string {
			return replacement + m[len(m)-1:]
		})
	}
	return content
}

// imageRefs lists the distinct non-empty references img may appear under,
// recorded source first.
func imageRefs(img sigedit.Image) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, ref := range []string{img.Src, img.Embedded, html.EscapeString(img.Src), html.EscapeString(img.Embedded)} {
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}

// Unapplied lists the field and image IDs in edits that exist in before but
// whose value after does not carry. It is how callers learn that Apply
// could not find a value in the HTML.
func Unapplied(before, after *sigedit.Signature, edits *sigedit.Edits) (fields, images []int) {
	if edits == nil {
		return nil, nil
	}
	for id, value := range edits.Fields {
		if _, ok := before.FindElement(id); !ok {
			continue
		}
		if el, ok := after.FindElement(id); ok && el.Value != value {
			fields = append(fields, id)
		}
	}
	for id, upd := range edits.Images {
		if upd.Embedded == "" {
			continue
		}
		if _, ok := before.FindImage(id); !ok {
			continue
		}
		if img, ok := after.FindImage(id); ok && img.Embedded != upd.Embedded {
			images = append(images, id)
		}
	}
	slices.Sort(fields)
	slices.Sort(images)
	return fields, images
}
