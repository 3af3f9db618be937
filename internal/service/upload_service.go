package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"article-cms/internal/domain"
	"article-cms/internal/metrics"
	"article-cms/internal/validator"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadService validates image uploads and hands them to a blob store.
type UploadService struct {
	blobs     BlobStore
	validator *validator.Validator
	now       func() time.Time
}

// NewUploadService creates a new UploadService.
func NewUploadService(blobs BlobStore, v *validator.Validator) *UploadService {
	return &UploadService{
		blobs:     blobs,
		validator: v,
		now:       time.Now,
	}
}

// UploadImage stores one image under a timestamped name in the articles/
// prefix and returns its public URL. Only admins may upload, only image
// MIME types are accepted, and files above the size limit are rejected.
func (s *UploadService) UploadImage(ctx context.Context, actor *domain.User, upload ImageUpload) (*UploadResult, error) {
	if err := authorize(actor, "upload image"); err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if err := s.validator.ValidateUpload(upload.ContentType, upload.Size); err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	name := fmt.Sprintf("articles/%d-%s", s.now().UnixMilli(), sanitizeFilename(upload.Filename))
	url, err := s.blobs.Put(ctx, name, upload.ContentType, upload.Data)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to store upload %s: %w", name, err)
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	return &UploadResult{URL: url, Filename: name}, nil
}

// sanitizeFilename replaces every character outside [a-zA-Z0-9.-] with an
// underscore so the original filename cannot smuggle path separators into
// the stored name.
func sanitizeFilename(name string) string {
	if name == "" {
		return "upload"
	}
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
