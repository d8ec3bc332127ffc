package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/sigedit"
)

// Ensure Writer implements sigedit.ExportWriter at compile time.
var _ sigedit.ExportWriter = (*Writer)(nil)

// Writer writes exported documents to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExport writes the export under its filename and returns the path.
// The file is written to a temporary name first and renamed into place, so
// an existing export is never left half-written.
func (w *Writer) WriteExport(ctx context.Context, export *sigedit.ExportResult) (string, error) {
	if export == nil || export.Filename == "" {
		return "", sigedit.Errorf(sigedit.EINVALID, "export filename required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Filenames are generated, but never let one escape the base directory.
	fullPath := filepath.Join(w.baseDir, filepath.Base(export.Filename))

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(w.baseDir, ".export-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(export.Content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
