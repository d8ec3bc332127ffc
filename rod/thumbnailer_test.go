//go:build integration

package rod_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/sigedit"
	"github.com/fwojciec/sigedit/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailer_Thumbnail(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	th := rod.NewThumbnailer()
	defer th.Close()

	uri, err := th.Thumbnail(ctx, `<table><tr><td><b>Jane Smith</b><br>Product Manager</td></tr></table>`)
	require.NoError(t, err)

	payload, ok := strings.CutPrefix(uri, "data:image/png;base64,")
	require.True(t, ok)
	data, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, rod.DefaultWidth, cfg.Width)
	assert.Equal(t, rod.DefaultHeight, cfg.Height)
}

func TestThumbnailer_ContextCancellation(t *testing.T) {
	t.Parallel()

	th := rod.NewThumbnailer()
	defer th.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := th.Thumbnail(ctx, "<p>x</p>")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestThumbnailer_AfterClose(t *testing.T) {
	t.Parallel()

	th := rod.NewThumbnailer()
	require.NoError(t, th.Close())
	require.NoError(t, th.Close())

	_, err := th.Thumbnail(context.Background(), "<p>x</p>")
	assert.Equal(t, sigedit.EUNAVAILABLE, sigedit.ErrorCode(err))
}
