// Package htmltomarkdown renders signature HTML as Markdown for terminal
// previews.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sigedit"
)

// EmbeddedImageRef replaces data URIs in rendered image links.
const EmbeddedImageRef = "embedded"

var (
	dataImageRe  = regexp.MustCompile(`!\[([^\]]*)\]\(data:[^)\s]*\)`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// Ensure Converter implements sigedit.Converter at compile time.
var _ sigedit.Converter = (*Converter)(nil)

// Converter turns signature markup into Markdown. Signatures are laid out
// with nested tables, so the table plugin is always on.
type Converter struct {
	md *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				strikethrough.NewStrikethroughPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert renders html as Markdown. Embedded images are shortened to
// ![alt](embedded) and runs of blank lines left by layout tables collapse
// to one.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sigedit.Errorf(sigedit.EINVALID, "empty HTML input")
	}

	md, err := c.md.ConvertString(html)
	if err != nil {
		return "", err
	}

	md = dataImageRe.ReplaceAllString(md, "![$1]("+EmbeddedImageRef+")")
	return blankLinesRe.ReplaceAllString(md, "\n\n"), nil
}
