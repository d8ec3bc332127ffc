package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/sigedit"
	"github.com/fwojciec/sigedit/mock"
	sigslog "github.com/fwojciec/sigedit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs element and image counts with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SignatureParser{
			ParseFn: func(html string) (*sigedit.Signature, error) {
				return &sigedit.Signature{
					Elements: []sigedit.Element{{ID: 1}, {ID: 2}},
					Images:   []sigedit.Image{{ID: 1}},
				}, nil
			},
		}

		sig, err := sigslog.NewLoggingParser(inner, logger).Parse("<p>Jane Smith</p>")

		require.NoError(t, err)
		assert.Len(t, sig.Elements, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=parse")
		assert.Contains(t, output, "bytes=17")
		assert.Contains(t, output, "elements=2")
		assert.Contains(t, output, "images=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SignatureParser{
			ParseFn: func(html string) (*sigedit.Signature, error) {
				return nil, sigedit.Errorf(sigedit.EPARSE, "not markup")
			},
		}

		_, err := sigslog.NewLoggingParser(inner, logger).Parse("text")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "elements=0")
		assert.Contains(t, output, "err=\"sigedit error: code=parse message=not markup\"")
	})
}

func TestLoggingEditor_Apply(t *testing.T) {
	t.Parallel()

	t.Run("logs edit size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &sigedit.Signature{HTMLContent: "<p>Jane Doe</p>"}
		inner := &mock.SignatureEditor{
			ApplyFn: func(sig *sigedit.Signature, edits *sigedit.Edits) (*sigedit.Signature, error) {
				return want, nil
			},
		}

		got, err := sigslog.NewLoggingEditor(inner, logger).Apply(&sigedit.Signature{}, &sigedit.Edits{
			Fields: map[int]string{1: "Jane Doe"},
		})

		require.NoError(t, err)
		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=edit")
		assert.Contains(t, output, "fields=1")
		assert.Contains(t, output, "images=0")
	})

	t.Run("handles nil edits", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SignatureEditor{
			ApplyFn: func(sig *sigedit.Signature, edits *sigedit.Edits) (*sigedit.Signature, error) {
				return sig, nil
			},
		}

		_, err := sigslog.NewLoggingEditor(inner, logger).Apply(&sigedit.Signature{}, nil)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "fields=0")
	})
}

func TestLoggingTemplateService(t *testing.T) {
	t.Parallel()

	t.Run("logs created template id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TemplateService{
			CreateTemplateFn: func(ctx context.Context, tmpl *sigedit.Template) error {
				tmpl.ID = 7
				tmpl.Name = "Template 7"
				return nil
			},
		}

		err := sigslog.NewLoggingTemplateService(inner, logger).CreateTemplate(context.Background(), &sigedit.Template{HTML: "<p>x</p>"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "template save")
		assert.Contains(t, output, "id=7")
		assert.Contains(t, output, "name=\"Template 7\"")
	})

	t.Run("logs lookup errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TemplateService{
			FindTemplateByIDFn: func(ctx context.Context, id int64) (*sigedit.Template, error) {
				return nil, errors.New("database closed")
			},
		}

		_, err := sigslog.NewLoggingTemplateService(inner, logger).FindTemplateByID(context.Background(), 3)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "template find")
		assert.Contains(t, output, "id=3")
		assert.Contains(t, output, "err=\"database closed\"")
	})

	t.Run("logs list count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TemplateService{
			FindTemplatesFn: func(ctx context.Context, filter sigedit.TemplateFilter) ([]*sigedit.Template, error) {
				return []*sigedit.Template{{ID: 1}, {ID: 2}}, nil
			},
		}

		templates, err := sigslog.NewLoggingTemplateService(inner, logger).FindTemplates(context.Background(), sigedit.TemplateFilter{})

		require.NoError(t, err)
		assert.Len(t, templates, 2)
		assert.Contains(t, buf.String(), "count=2")
	})
}

func TestLoggingSignatureService(t *testing.T) {
	t.Parallel()

	t.Run("logs generated id on save", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SignatureService{
			CreateSignatureFn: func(ctx context.Context, sig *sigedit.StoredSignature) error {
				sig.ID = "sig-9"
				return nil
			},
		}

		sig := &sigedit.StoredSignature{Signature: sigedit.Signature{
			HTMLContent: "<p>Jane Smith</p>",
			Elements:    []sigedit.Element{{ID: 1}},
		}}
		err := sigslog.NewLoggingSignatureService(inner, logger).CreateSignature(context.Background(), sig)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "signature save")
		assert.Contains(t, output, "id=sig-9")
		assert.Contains(t, output, "elements=1")
	})

	t.Run("logs update and delete errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SignatureService{
			UpdateSignatureFn: func(ctx context.Context, id string, sig *sigedit.Signature) (*sigedit.StoredSignature, error) {
				return nil, sigedit.Errorf(sigedit.ENOTFOUND, "signature %s not found", id)
			},
			DeleteSignatureFn: func(ctx context.Context, id string) error {
				return errors.New("database closed")
			},
		}
		svc := sigslog.NewLoggingSignatureService(inner, logger)

		_, err := svc.UpdateSignature(context.Background(), "sig-1", &sigedit.Signature{HTMLContent: "<p>x</p>"})
		require.Error(t, err)
		require.Error(t, svc.DeleteSignature(context.Background(), "sig-1"))

		output := buf.String()
		assert.Contains(t, output, "signature update")
		assert.Contains(t, output, "bytes=8")
		assert.Contains(t, output, "signature delete")
		assert.Contains(t, output, "database closed")
	})

	t.Run("logs list count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SignatureService{
			FindSignaturesFn: func(ctx context.Context, filter sigedit.SignatureFilter) ([]*sigedit.StoredSignature, error) {
				return []*sigedit.StoredSignature{{}, {}}, nil
			},
		}

		sigs, err := sigslog.NewLoggingSignatureService(inner, logger).FindSignatures(context.Background(), sigedit.SignatureFilter{})

		require.NoError(t, err)
		assert.Len(t, sigs, 2)
		assert.Contains(t, buf.String(), "count=2")
	})
}
