package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/sigedit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sigedit.SignatureService = (*SignatureService)(nil)

// SignatureService implements sigedit.SignatureService using SQLite.
// Elements and images are stored as JSON columns.
type SignatureService struct {
	db *DB
}

// NewSignatureService creates a new SignatureService.
func NewSignatureService(db *DB) *SignatureService {
	return &SignatureService{db: db}
}

const signatureColumns = "id, html_content, elements, images, styles, parsed_at, last_modified"

// CreateSignature stores a signature, generating an ID if it has none.
func (s *SignatureService) CreateSignature(ctx context.Context, sig *sigedit.StoredSignature) error {
	if sig.HTMLContent == "" {
		return sigedit.Errorf(sigedit.EINVALID, "signature HTML required")
	}
	if sig.ID == "" {
		sig.ID = uuid.New().String()
	}
	sig.LastModified = now()
	if sig.Metadata.Parsed.IsZero() {
		sig.Metadata.Parsed = sig.LastModified
	}
	sig.Metadata.Parsed = sig.Metadata.Parsed.UTC().Truncate(time.Second)

	elements, images, err := encodeParts(&sig.Signature)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO signatures (`+signatureColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sig.ID, sig.HTMLContent, elements, images, sig.Styles,
		formatTime(sig.Metadata.Parsed), formatTime(sig.LastModified))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return sigedit.Errorf(sigedit.ECONFLICT, "signature %s already exists", sig.ID)
	}
	return err
}

// FindSignatureByID retrieves a signature by ID.
func (s *SignatureService) FindSignatureByID(ctx context.Context, id string) (*sigedit.StoredSignature, error) {
	sig, err := scanSignature(s.db.QueryRowContext(ctx,
		"SELECT "+signatureColumns+" FROM signatures WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, sigedit.Errorf(sigedit.ENOTFOUND, "signature %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// FindSignatures retrieves signatures matching the filter, most recently
// modified first.
func (s *SignatureService) FindSignatures(ctx context.Context, filter sigedit.SignatureFilter) ([]*sigedit.StoredSignature, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + signatureColumns + " FROM signatures WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY last_modified DESC, id ASC")

	args = paginate(&query, args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sigs []*sigedit.StoredSignature
	for rows.Next() {
		sig, err := scanSignature(rows)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}

	return sigs, rows.Err()
}

// UpdateSignature replaces the stored content of a signature.
func (s *SignatureService) UpdateSignature(ctx context.Context, id string, sig *sigedit.Signature) (*sigedit.StoredSignature, error) {
	if sig == nil || sig.HTMLContent == "" {
		return nil, sigedit.Errorf(sigedit.EINVALID, "signature HTML required")
	}

	stored, err := s.FindSignatureByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := sig.Clone()
	updated.ID = id
	updated.Metadata.Parsed = stored.Metadata.Parsed
	updated.Metadata.ElementCount = len(updated.Elements)
	updated.Metadata.ImageCount = len(updated.Images)

	elements, images, err := encodeParts(updated)
	if err != nil {
		return nil, err
	}

	stored.Signature = *updated
	stored.LastModified = now()

	_, err = s.db.ExecContext(ctx, `
		UPDATE signatures
		SET html_content = ?, elements = ?, images = ?, styles = ?, last_modified = ?
		WHERE id = ?
	`, stored.HTMLContent, elements, images, stored.Styles,
		formatTime(stored.LastModified), id)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// DeleteSignature permanently removes a signature.
func (s *SignatureService) DeleteSignature(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM signatures WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sigedit.Errorf(sigedit.ENOTFOUND, "signature %s not found", id)
	}

	return nil
}

func encodeParts(sig *sigedit.Signature) (elements, images string, err error) {
	elems := sig.Elements
	if elems == nil {
		elems = []sigedit.Element{}
	}
	imgs := sig.Images
	if imgs == nil {
		imgs = []sigedit.Image{}
	}

	e, err := json.Marshal(elems)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode elements: %w", err)
	}
	i, err := json.Marshal(imgs)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode images: %w", err)
	}
	return string(e), string(i), nil
}

func scanSignature(row scanner) (*sigedit.StoredSignature, error) {
	var sig sigedit.StoredSignature
	var elements, images, parsedAt, lastModified string

	if err := row.Scan(&sig.ID, &sig.HTMLContent, &elements, &images, &sig.Styles, &parsedAt, &lastModified); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(elements), &sig.Elements); err != nil {
		return nil, fmt.Errorf("failed to decode elements: %w", err)
	}
	if err := json.Unmarshal([]byte(images), &sig.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}

	var err error
	sig.Metadata.Parsed, err = parseTime("parsed_at", parsedAt)
	if err != nil {
		return nil, err
	}
	sig.LastModified, err = parseTime("last_modified", lastModified)
	if err != nil {
		return nil, err
	}
	sig.Metadata.ElementCount = len(sig.Elements)
	sig.Metadata.ImageCount = len(sig.Images)

	return &sig, nil
}
