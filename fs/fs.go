// Package fs reads signature inputs from disk and writes exported documents.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sigedit"
	"github.com/gosimple/slug"
)

// MaxImageBytes caps the size of image files read by ReadImage.
const MaxImageBytes = 10 << 20

// ReadHTML reads an .html or .htm file.
func ReadHTML(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
	default:
		return "", sigedit.Errorf(sigedit.EINVALID, "%s is not an HTML file", path)
	}

	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadImage reads an image file for upload. The content is not checked
// here; the encoder rejects files that are not images.
func ReadImage(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, sigedit.Errorf(sigedit.ENOTFOUND, "file %s not found", path)
	}
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxImageBytes {
		return nil, sigedit.Errorf(sigedit.EINVALID, "%s is larger than %d MB", path, MaxImageBytes>>20)
	}
	return readFile(path)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, sigedit.Errorf(sigedit.ENOTFOUND, "file %s not found", path)
	}
	return data, err
}

// TemplateFilename returns the export filename for a saved template,
// e.g. "Template 1" becomes "template-1.html".
func TemplateFilename(tmpl *sigedit.Template) string {
	name := slug.Make(tmpl.Name)
	if name == "" {
		name = "template"
	}
	return name + ".html"
}
