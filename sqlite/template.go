package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sigedit"
)

// Compile-time interface verification.
var _ sigedit.TemplateService = (*TemplateService)(nil)

// TemplateService implements sigedit.TemplateService using SQLite.
type TemplateService struct {
	db *DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *DB) *TemplateService {
	return &TemplateService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateTemplate saves a template. Templates without a name are called
// "Template <id>".
func (s *TemplateService) CreateTemplate(ctx context.Context, tmpl *sigedit.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	tmpl.ContentHash = hashContent(tmpl.HTML)
	tmpl.LastModified = now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO templates (name, html, thumbnail, content_hash, last_modified)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, tmpl.Name, tmpl.HTML, tmpl.Thumbnail, tmpl.ContentHash,
		formatTime(tmpl.LastModified)).Scan(&id)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(tmpl.Name)
	if name == "" {
		name = "Template " + strconv.FormatInt(id, 10)
		if _, err := tx.ExecContext(ctx, "UPDATE templates SET name = ? WHERE id = ?", name, id); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	tmpl.ID = id
	tmpl.Name = name
	return nil
}

// FindTemplateByID retrieves a template by ID.
func (s *TemplateService) FindTemplateByID(ctx context.Context, id int64) (*sigedit.Template, error) {
	tmpl, err := scanTemplate(s.db.QueryRowContext(ctx, `
		SELECT id, name, html, thumbnail, content_hash, last_modified
		FROM templates
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, sigedit.Errorf(sigedit.ENOTFOUND, "template %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// FindTemplates retrieves templates matching the filter, oldest first.
func (s *TemplateService) FindTemplates(ctx context.Context, filter sigedit.TemplateFilter) ([]*sigedit.Template, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, html, thumbnail, content_hash, last_modified FROM templates WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY id ASC")

	args = paginate(&query, args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*sigedit.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	return templates, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*sigedit.Template, error) {
	var tmpl sigedit.Template
	var lastModified string

	if err := row.Scan(&tmpl.ID, &tmpl.Name, &tmpl.HTML, &tmpl.Thumbnail, &tmpl.ContentHash, &lastModified); err != nil {
		return nil, err
	}

	var err error
	tmpl.LastModified, err = parseTime("last_modified", lastModified)
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}
