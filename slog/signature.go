package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sigedit"
)

// Ensure LoggingSignatureService implements sigedit.SignatureService.
var _ sigedit.SignatureService = (*LoggingSignatureService)(nil)

// LoggingSignatureService wraps a SignatureService with logging.
type LoggingSignatureService struct {
	next   sigedit.SignatureService
	logger *slog.Logger
}

// NewLoggingSignatureService creates a new LoggingSignatureService.
func NewLoggingSignatureService(next sigedit.SignatureService, logger *slog.Logger) *LoggingSignatureService {
	return &LoggingSignatureService{next: next, logger: logger}
}

// CreateSignature delegates to the wrapped service and logs the stored ID.
func (s *LoggingSignatureService) CreateSignature(ctx context.Context, sig *sigedit.StoredSignature) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("signature save",
			"id", sig.ID,
			"elements", len(sig.Elements),
			"images", len(sig.Images),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSignature(ctx, sig)
}

func (s *LoggingSignatureService) FindSignatureByID(ctx context.Context, id string) (sig *sigedit.StoredSignature, err error) {
	defer func(begin time.Time) {
		s.logger.Info("signature find",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSignatureByID(ctx, id)
}

func (s *LoggingSignatureService) FindSignatures(ctx context.Context, filter sigedit.SignatureFilter) (sigs []*sigedit.StoredSignature, err error) {
	defer func(begin time.Time) {
		s.logger.Info("signature list",
			"count", len(sigs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSignatures(ctx, filter)
}

// UpdateSignature delegates to the wrapped service and logs the new size.
func (s *LoggingSignatureService) UpdateSignature(ctx context.Context, id string, sig *sigedit.Signature) (stored *sigedit.StoredSignature, err error) {
	defer func(begin time.Time) {
		s.logger.Info("signature update",
			"id", id,
			"bytes", len(sig.HTMLContent),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateSignature(ctx, id, sig)
}

func (s *LoggingSignatureService) DeleteSignature(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("signature delete",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSignature(ctx, id)
}
