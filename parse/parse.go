// Package parse assembles signature models from raw HTML.
package parse

import (
	"regexp"
	"time"

	"github.com/fwojciec/sigedit"
	"github.com/google/uuid"
)

// Ensure Parser implements sigedit.SignatureParser at compile time.
var _ sigedit.SignatureParser = (*Parser)(nil)

var styleRe = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)

// Parser builds signatures from HTML.
//
// Tree is tried first. When it is nil or declines the input with
// EUNAVAILABLE, Fallback is used instead.
type Parser struct {
	Tree       sigedit.MarkupLoader
	Fallback   sigedit.MarkupLoader
	Classifier *sigedit.Classifier
	Images     sigedit.ImagePolicy

	// Now and NewID default to time.Now and random UUIDs.
	Now   func() time.Time
	NewID func() string
}

// Parse loads html, classifies its text and images and returns a new
// Signature with freshly assigned element and image IDs.
func (p *Parser) Parse(html string) (*sigedit.Signature, error) {
	markup, err := p.load(html)
	if err != nil {
		return nil, err
	}

	classifier := p.Classifier
	if classifier == nil {
		classifier = sigedit.NewClassifier()
	}

	nodes := markup.ExtractImages()
	images := make([]sigedit.Image, 0, len(nodes))
	for _, n := range nodes {
		images = append(images, p.Images.Image(n))
	}

	elements := classifier.Classify(markup.ExtractText())
	if elements == nil {
		elements = []sigedit.Element{}
	}

	content := markup.HTML()
	return &sigedit.Signature{
		ID:          p.newID(),
		HTMLContent: content,
		Elements:    elements,
		Images:      images,
		Styles:      ExtractStyles(content),
		Metadata: sigedit.Metadata{
			Parsed:       p.now(),
			ElementCount: len(elements),
			ImageCount:   len(images),
		},
	}, nil
}

// load selects the loader for html.
func (p *Parser) load(html string) (sigedit.Markup, error) {
	if p.Tree != nil {
		markup, err := p.Tree.Load(html)
		if err == nil {
			return markup, nil
		}
		if sigedit.ErrorCode(err) != sigedit.EUNAVAILABLE || p.Fallback == nil {
			return nil, err
		}
	}
	if p.Fallback == nil {
		return nil, sigedit.Errorf(sigedit.EUNAVAILABLE, "no markup loader configured")
	}
	return p.Fallback.Load(html)
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}

func (p *Parser) newID() string {
	if p.NewID != nil {
		return p.NewID()
	}
	return uuid.New().String()
}

// ExtractStyles returns the content of the first <style> block in html, or
// an empty string when there is none.
func ExtractStyles(html string) string {
	m := styleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return m[1]
}
