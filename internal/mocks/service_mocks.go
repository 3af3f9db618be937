package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"article-cms/internal/domain"
	"article-cms/internal/service"
	"article-cms/internal/validator"
)

// MockArticleService is a mock implementation of service.ArticleServiceInterface.
type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) SaveDraft(ctx context.Context, actor *domain.User, in *validator.ArticleInput) (*domain.Article, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) SaveAndPublish(ctx context.Context, actor *domain.User, in *validator.ArticleInput) (*domain.Article, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) Update(ctx context.Context, actor *domain.User, id string, in *validator.ArticleInput) (*domain.Article, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) Publish(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) Unpublish(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) Delete(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) GetArticle(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) List(ctx context.Context, actor *domain.User, opts domain.ListOptions) (*domain.ArticlePage, error) {
	args := m.Called(ctx, actor, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticlePage), args.Error(1)
}

func (m *MockArticleService) GetPublished(ctx context.Context, slug string) (*domain.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleService) ListPublished(ctx context.Context, opts domain.ListOptions) (*domain.ArticlePage, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticlePage), args.Error(1)
}

// MockUploadService is a mock implementation of service.UploadServiceInterface.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, actor *domain.User, upload service.ImageUpload) (*service.UploadResult, error) {
	args := m.Called(ctx, actor, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

// MockIdentityService is a mock implementation of service.IdentityServiceInterface.
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Resolve(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockBlobStore is a mock implementation of service.BlobStore.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, name, contentType string, data io.Reader) (string, error) {
	args := m.Called(ctx, name, contentType, data)
	return args.String(0), args.Error(1)
}
