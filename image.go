package sigedit

import "strings"

// ImagePolicy classifies images by their alt text and source.
type ImagePolicy struct {
	// Fallback is the type given to images that are neither a logo nor a
	// profile picture. Defaults to ImageGeneric.
	Fallback ImageType
}

// ParseImageFallback validates a configured fallback type.
// Empty means ImageGeneric.
func ParseImageFallback(s string) (ImageType, error) {
	switch ImageType(strings.ToLower(strings.TrimSpace(s))) {
	case "", ImageGeneric:
		return ImageGeneric, nil
	case ImageProfile:
		return ImageProfile, nil
	}
	return "", Errorf(EINVALID, "image fallback %q must be %q or %q", s, ImageGeneric, ImageProfile)
}

// Classify returns the image type for an image node.
func (p ImagePolicy) Classify(n ImageNode) ImageType {
	alt := strings.ToLower(n.Alt)
	src := strings.ToLower(n.Src)

	if strings.Contains(alt, "logo") || strings.Contains(src, "logo") {
		return ImageLogo
	}
	if strings.Contains(alt, "profile") || strings.Contains(alt, "photo") {
		return ImageProfile
	}
	if p.Fallback == "" {
		return ImageGeneric
	}
	return p.Fallback
}

// Image builds the model for an extracted image node.
func (p ImagePolicy) Image(n ImageNode) Image {
	return Image{
		ID:       n.ID,
		Type:     p.Classify(n),
		Src:      n.Src,
		Embedded: n.Src,
		Dimensions: Dimensions{
			Width:  ParseDimension(n.Width),
			Height: ParseDimension(n.Height),
		},
	}
}

// EncodedImage is image data converted to an embeddable data URI.
type EncodedImage struct {
	MediaType  string
	DataURI    string
	Dimensions Dimensions
}

// Edit returns the image edit that embeds this image.
func (e *EncodedImage) Edit() ImageEdit {
	return ImageEdit{Embedded: e.DataURI, Dimensions: e.Dimensions}
}

// ImageEncoder converts raw uploaded image bytes into an embeddable form.
type ImageEncoder interface {
	// Encode returns EMEDIA if data is not an image.
	Encode(data []byte) (*EncodedImage, error)
}
