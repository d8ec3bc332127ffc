// Package rod renders signature HTML in headless Chrome.
package rod

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/fwojciec/sigedit"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Default viewport for thumbnails. Signatures are short and about as wide
// as an email body.
const (
	DefaultWidth  = 600
	DefaultHeight = 200
)

// Ensure Thumbnailer implements sigedit.Thumbnailer at compile time.
var _ sigedit.Thumbnailer = (*Thumbnailer)(nil)

// Thumbnailer screenshots signature HTML. The browser is launched on first
// use and reused until Close.
//
// Thumbnailer is safe for concurrent use by multiple goroutines.
type Thumbnailer struct {
	Width  int
	Height int

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   bool
}

// NewThumbnailer creates a Thumbnailer with the default viewport.
// Close must be called when the Thumbnailer is no longer needed.
func NewThumbnailer() *Thumbnailer {
	return &Thumbnailer{Width: DefaultWidth, Height: DefaultHeight}
}

// Thumbnail renders html and returns a PNG data URI of the viewport.
func (t *Thumbnailer) Thumbnail(ctx context.Context, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := t.connect()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             t.Width,
		Height:            t.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", err
	}

	if err := page.SetDocumentContent(html); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	png, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (t *Thumbnailer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true

	var err error
	if t.browser != nil {
		err = t.browser.Close()
		t.browser = nil
	}
	if t.launcher != nil {
		t.launcher.Kill()
		t.launcher = nil
	}
	return err
}

// connect returns the running browser, launching it if needed.
func (t *Thumbnailer) connect() (*rod.Browser, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, sigedit.Errorf(sigedit.EUNAVAILABLE, "thumbnailer is closed")
	}
	if t.browser != nil {
		return t.browser, nil
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	t.browser = browser
	t.launcher = l
	return browser, nil
}
