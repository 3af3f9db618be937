package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"article-cms/internal/domain"
	"article-cms/internal/mocks"
	"article-cms/internal/service"
	"article-cms/internal/validator"
)

func TestUploadService_UploadImage(t *testing.T) {
	ctx := context.Background()

	newUpload := func(name, contentType string, size int64) service.ImageUpload {
		return service.ImageUpload{
			Filename:    name,
			ContentType: contentType,
			Size:        size,
			Data:        strings.NewReader("data"),
		}
	}

	t.Run("stores image under timestamped sanitized name", func(t *testing.T) {
		blobs := new(mocks.MockBlobStore)
		svc := service.NewUploadService(blobs, validator.NewValidator())

		blobs.On("Put", ctx, mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "articles/") &&
				strings.HasSuffix(name, "-my_photo_1.png") &&
				!strings.Contains(name, " ")
		}), "image/png", mock.Anything).Return("/uploads/articles/x.png", nil)

		result, err := svc.UploadImage(ctx, adminUser, newUpload("my photo (1).png", "image/png", 1024))
		require.NoError(t, err)
		assert.Equal(t, "/uploads/articles/x.png", result.URL)
		assert.True(t, strings.HasPrefix(result.Filename, "articles/"))
		blobs.AssertExpectations(t)
	})

	t.Run("rejects non-admin", func(t *testing.T) {
		blobs := new(mocks.MockBlobStore)
		svc := service.NewUploadService(blobs, validator.NewValidator())

		_, err := svc.UploadImage(ctx, normalUser, newUpload("a.png", "image/png", 10))
		assert.ErrorIs(t, err, domain.ErrForbidden)
		blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		blobs := new(mocks.MockBlobStore)
		svc := service.NewUploadService(blobs, validator.NewValidator())

		_, err := svc.UploadImage(ctx, adminUser, newUpload("a.pdf", "application/pdf", 10))
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		blobs := new(mocks.MockBlobStore)
		svc := service.NewUploadService(blobs, validator.NewValidator())

		_, err := svc.UploadImage(ctx, adminUser, newUpload("big.png", "image/png", validator.MaxUploadSize+1))
		assert.True(t, domain.IsValidation(err))
	})
}

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user record", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		svc := service.NewIdentityService(users)

		users.On("GetByID", ctx, "admin-1").Return(adminUser, nil)

		got, err := svc.Resolve(ctx, "admin-1")
		require.NoError(t, err)
		assert.Equal(t, adminUser, got)
	})

	t.Run("unknown subject is an error, not a placeholder", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		svc := service.NewIdentityService(users)

		users.On("GetByID", ctx, "ghost").Return(nil, nil)

		_, err := svc.Resolve(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
