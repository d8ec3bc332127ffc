package mock

import "github.com/fwojciec/sigedit"

var _ sigedit.ImageEncoder = (*ImageEncoder)(nil)

// ImageEncoder is a mock implementation of sigedit.ImageEncoder.
type ImageEncoder struct {
	EncodeFn func(data []byte) (*sigedit.EncodedImage, error)
}

func (e *ImageEncoder) Encode(data []byte) (*sigedit.EncodedImage, error) {
	return e.EncodeFn(data)
}
