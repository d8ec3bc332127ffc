package rod_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/sigedit/mock"
	"github.com/fwojciec/sigedit/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingThumbnailer_Thumbnail(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Thumbnailer{
			ThumbnailFn: func(ctx context.Context, html string) (string, error) {
				return "data:image/png;base64,AA==", nil
			},
		}

		uri, err := rod.NewLoggingThumbnailer(inner, logger).Thumbnail(context.Background(), "<p>Jane</p>")

		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,AA==", uri)
		output := buf.String()
		assert.Contains(t, output, "msg=thumbnail")
		assert.Contains(t, output, "html_bytes=11")
		assert.Contains(t, output, "uri_bytes=26")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Thumbnailer{
			ThumbnailFn: func(ctx context.Context, html string) (string, error) {
				return "", errors.New("no browser")
			},
		}

		_, err := rod.NewLoggingThumbnailer(inner, logger).Thumbnail(context.Background(), "<p>Jane</p>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"no browser\"")
	})
}
