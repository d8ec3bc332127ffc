// Package sigedit turns HTML email signatures into an editable model and
// writes edits back into the original markup.
//
// This package contains domain types, interfaces and the pure core logic
// (field classification, image classification, validation, export) following
// Ben Johnson's Standard Package Layout. Implementations live in subdirectories
// named after their primary dependency (e.g., goquery/, sqlite/, imaging/).
package sigedit
