package mock

import (
	"context"

	"github.com/fwojciec/sigedit"
)

var _ sigedit.SignatureParser = (*SignatureParser)(nil)

// SignatureParser is a mock implementation of sigedit.SignatureParser.
type SignatureParser struct {
	ParseFn func(html string) (*sigedit.Signature, error)
}

func (p *SignatureParser) Parse(html string) (*sigedit.Signature, error) {
	return p.ParseFn(html)
}

var _ sigedit.SignatureEditor = (*SignatureEditor)(nil)

// SignatureEditor is a mock implementation of sigedit.SignatureEditor.
type SignatureEditor struct {
	ApplyFn func(sig *sigedit.Signature, edits *sigedit.Edits) (*sigedit.Signature, error)
}

func (e *SignatureEditor) Apply(sig *sigedit.Signature, edits *sigedit.Edits) (*sigedit.Signature, error) {
	return e.ApplyFn(sig, edits)
}

var _ sigedit.SignatureService = (*SignatureService)(nil)

// SignatureService is a mock implementation of sigedit.SignatureService.
type SignatureService struct {
	CreateSignatureFn   func(ctx context.Context, sig *sigedit.StoredSignature) error
	FindSignatureByIDFn func(ctx context.Context, id string) (*sigedit.StoredSignature, error)
	FindSignaturesFn    func(ctx context.Context, filter sigedit.SignatureFilter) ([]*sigedit.StoredSignature, error)
	UpdateSignatureFn   func(ctx context.Context, id string, sig *sigedit.Signature) (*sigedit.StoredSignature, error)
	DeleteSignatureFn   func(ctx context.Context, id string) error
}

func (s *SignatureService) CreateSignature(ctx context.Context, sig *sigedit.StoredSignature) error {
	return s.CreateSignatureFn(ctx, sig)
}

func (s *SignatureService) FindSignatureByID(ctx context.Context, id string) (*sigedit.StoredSignature, error) {
	return s.FindSignatureByIDFn(ctx, id)
}

func (s *SignatureService) FindSignatures(ctx context.Context, filter sigedit.SignatureFilter) ([]*sigedit.StoredSignature, error) {
	return s.FindSignaturesFn(ctx, filter)
}

func (s *SignatureService) UpdateSignature(ctx context.Context, id string, sig *sigedit.Signature) (*sigedit.StoredSignature, error) {
	return s.UpdateSignatureFn(ctx, id, sig)
}

func (s *SignatureService) DeleteSignature(ctx context.Context, id string) error {
	return s.DeleteSignatureFn(ctx, id)
}
