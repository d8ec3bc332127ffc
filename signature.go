package sigedit

import (
	"context"
	"slices"
	"time"
)

// FieldType identifies the kind of text field detected in a signature.
type FieldType string

// FieldType constants in classification priority order.
const (
	FieldName    FieldType = "name"
	FieldTitle   FieldType = "title"
	FieldEmail   FieldType = "email"
	FieldPhone   FieldType = "phone"
	FieldWebsite FieldType = "website"
)

// ImageType identifies the role of an image in a signature.
type ImageType string

// ImageType constants.
const (
	ImageLogo    ImageType = "logo"
	ImageProfile ImageType = "profile"
	ImageGeneric ImageType = "generic"
)

// DefaultDimension is used for image width or height when the markup does
// not declare a usable value.
const DefaultDimension = 100

// Signature is the structured model of a parsed HTML email signature.
// HTMLContent is the source of truth; element values and image embedded
// values always mirror the substitutions already applied to it.
type Signature struct {
	ID          string    `json:"id"`
	HTMLContent string    `json:"htmlContent"`
	Elements    []Element `json:"elements"`
	Images      []Image   `json:"images"`
	Styles      string    `json:"styles"`
	Metadata    Metadata  `json:"metadata"`
}

// Metadata describes when and what a parse produced.
type Metadata struct {
	Parsed       time.Time `json:"parsed"`
	ElementCount int       `json:"elementCount"`
	ImageCount   int       `json:"imageCount"`
}

// Element is a classified, editable text field.
type Element struct {
	ID         int       `json:"id"`
	Type       FieldType `json:"type"`
	Label      string    `json:"label"`
	Value      string    `json:"value"`
	Locator    string    `json:"locator"`
	Validation FieldType `json:"validation"`
}

// Image is an editable picture referenced by the signature.
type Image struct {
	ID         int        `json:"id"`
	Type       ImageType  `json:"type"`
	Src        string     `json:"src"`
	Embedded   string     `json:"embedded"`
	Dimensions Dimensions `json:"dimensions"`
}

// Dimensions holds image width and height in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Clone returns a deep copy of the signature.
func (s *Signature) Clone() *Signature {
	if s == nil {
		return nil
	}
	other := *s
	other.Elements = slices.Clone(s.Elements)
	other.Images = slices.Clone(s.Images)
	return &other
}

// FindElement returns the element with the given ID.
func (s *Signature) FindElement(id int) (Element, bool) {
	for _, el := range s.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

// FindImage returns the image with the given ID.
func (s *Signature) FindImage(id int) (Image, bool) {
	for _, img := range s.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// SignatureParser builds a Signature from raw HTML.
type SignatureParser interface {
	// Parse loads, extracts and classifies the HTML.
	// Returns EPARSE if the input is not markup at all.
	Parse(html string) (*Signature, error)
}

// Edits is a set of field and image changes applied in one transaction.
// Both maps may be partial; only changed entries need to appear.
type Edits struct {
	Fields map[int]string
	Images map[int]ImageEdit
}

// ImageEdit replaces an image with a new embeddable representation.
type ImageEdit struct {
	Embedded   string
	Dimensions Dimensions
}

// IsEmpty reports whether the edit set changes nothing.
func (e *Edits) IsEmpty() bool {
	return e == nil || (len(e.Fields) == 0 && len(e.Images) == 0)
}

// SignatureEditor applies edits to a signature.
type SignatureEditor interface {
	// Apply rewrites the signature's current HTML and returns the updated
	// signature. The input signature is never modified.
	Apply(sig *Signature, edits *Edits) (*Signature, error)
}

// StoredSignature is a signature persisted by a SignatureService.
type StoredSignature struct {
	Signature
	LastModified time.Time `json:"lastModified"`
}

// SignatureService represents a service for managing saved signatures.
type SignatureService interface {
	// CreateSignature stores a parsed signature. The signature ID is kept
	// when set, otherwise one is generated.
	CreateSignature(ctx context.Context, sig *StoredSignature) error

	// FindSignatureByID retrieves a signature by ID.
	// Returns ENOTFOUND if signature does not exist.
	FindSignatureByID(ctx context.Context, id string) (*StoredSignature, error)

	// FindSignatures retrieves signatures matching the filter.
	FindSignatures(ctx context.Context, filter SignatureFilter) ([]*StoredSignature, error)

	// UpdateSignature replaces the stored content with sig's content.
	// Returns ENOTFOUND if signature does not exist.
	UpdateSignature(ctx context.Context, id string, sig *Signature) (*StoredSignature, error)

	// DeleteSignature permanently removes a signature.
	// Returns ENOTFOUND if signature does not exist.
	DeleteSignature(ctx context.Context, id string) error
}

// SignatureFilter represents a filter for FindSignatures.
type SignatureFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
