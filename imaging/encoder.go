// Package imaging turns uploaded image files into data URIs that can be
// embedded into signature HTML.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/fwojciec/sigedit"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Ensure Encoder implements sigedit.ImageEncoder at compile time.
var _ sigedit.ImageEncoder = (*Encoder)(nil)

// Encoder validates and embeds uploaded images.
type Encoder struct {
	// MaxWidth and MaxHeight bound the embedded image. Larger images are
	// scaled down preserving their aspect ratio and re-encoded. Zero means
	// no bound in that direction.
	MaxWidth  int
	MaxHeight int
}

// NewEncoder creates an Encoder that never resizes.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode returns EMEDIA unless data is an image. Images that are
// recognized but cannot be decoded are embedded as-is with default
// dimensions.
func (e *Encoder) Encode(data []byte) (*sigedit.EncodedImage, error) {
	mediaType, err := sniff(data)
	if err != nil {
		return nil, err
	}

	out := &sigedit.EncodedImage{
		MediaType:  mediaType,
		Dimensions: sigedit.Dimensions{Width: sigedit.DefaultDimension, Height: sigedit.DefaultDimension},
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		out.DataURI = dataURI(mediaType, data)
		return out, nil
	}

	if resized, ok := e.fit(img); ok {
		encoded, format, err := reencode(resized, mediaType)
		if err != nil {
			return nil, sigedit.Errorf(sigedit.EMEDIA, "failed to re-encode image: %v", err)
		}
		img, data, mediaType = resized, encoded, format
		out.MediaType = mediaType
	}

	b := img.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 {
		out.Dimensions = sigedit.Dimensions{Width: b.Dx(), Height: b.Dy()}
	}
	out.DataURI = dataURI(mediaType, data)
	return out, nil
}

// fit scales img down to the configured bounds. It reports false when the
// image already fits.
func (e *Encoder) fit(img image.Image) (image.Image, bool) {
	b := img.Bounds()
	w, h := e.MaxWidth, e.MaxHeight
	if w <= 0 {
		w = b.Dx()
	}
	if h <= 0 {
		h = b.Dy()
	}
	if b.Dx() <= w && b.Dy() <= h {
		return img, false
	}
	return imaging.Fit(img, w, h, imaging.Lanczos), true
}

// reencode writes img as JPEG when it was a JPEG and as PNG otherwise.
func reencode(img image.Image, mediaType string) ([]byte, string, error) {
	var buf bytes.Buffer
	if mediaType == "image/jpeg" {
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	}
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/png", nil
}

// sniff returns the media type of data from its magic bytes.
func sniff(data []byte) (string, error) {
	if len(data) == 0 {
		return "", sigedit.Errorf(sigedit.EMEDIA, "image file is empty")
	}
	if isSVG(data) {
		return "image/svg+xml", nil
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		if kind == filetype.Unknown {
			return "", sigedit.Errorf(sigedit.EMEDIA, "file is not an image")
		}
		return "", sigedit.Errorf(sigedit.EMEDIA, "file is %s, not an image", kind.MIME.Value)
	}
	kind, err := filetype.Image(data)
	if err != nil {
		return "", sigedit.Errorf(sigedit.EMEDIA, "file is not an image")
	}
	return kind.MIME.Value, nil
}

// isSVG reports whether data looks like an SVG document. filetype only
// matches binary signatures.
func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimSpace(head)
	if !bytes.HasPrefix(head, []byte("<")) {
		return false
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
