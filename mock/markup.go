package mock

import (
	"iter"

	"github.com/fwojciec/sigedit"
)

var _ sigedit.MarkupLoader = (*MarkupLoader)(nil)

// MarkupLoader is a mock implementation of sigedit.MarkupLoader.
type MarkupLoader struct {
	LoadFn func(html string) (sigedit.Markup, error)
}

func (l *MarkupLoader) Load(html string) (sigedit.Markup, error) {
	return l.LoadFn(html)
}

var _ sigedit.Markup = (*Markup)(nil)

// Markup is a mock implementation of sigedit.Markup.
type Markup struct {
	ExtractTextFn   func() iter.Seq[sigedit.TextSpan]
	ExtractImagesFn func() []sigedit.ImageNode
	HTMLFn          func() string
}

func (m *Markup) ExtractText() iter.Seq[sigedit.TextSpan] {
	return m.ExtractTextFn()
}

func (m *Markup) ExtractImages() []sigedit.ImageNode {
	return m.ExtractImagesFn()
}

func (m *Markup) HTML() string {
	return m.HTMLFn()
}
