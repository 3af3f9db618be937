package service

import (
	"context"
	"io"

	"article-cms/internal/domain"
	"article-cms/internal/validator"
)

// ArticleServiceInterface defines article authoring and reading operations.
// Every mutating operation takes the acting user and refuses non-admins
// before touching storage.
type ArticleServiceInterface interface {
	// SaveDraft creates a new draft article from the new-article flow.
	SaveDraft(ctx context.Context, actor *domain.User, in *validator.ArticleInput) (*domain.Article, error)
	// SaveAndPublish creates a new article already published, with the
	// publication timestamp set to now.
	SaveAndPublish(ctx context.Context, actor *domain.User, in *validator.ArticleInput) (*domain.Article, error)
	// Update rewrites title, slug and content of an existing article from
	// the editor flow. The slug is recomputed from the new title.
	Update(ctx context.Context, actor *domain.User, id string, in *validator.ArticleInput) (*domain.Article, error)
	// Publish moves an article to published and stamps published_at,
	// whatever state it was in before.
	Publish(ctx context.Context, actor *domain.User, id string) (*domain.Article, error)
	// Unpublish moves an article back to draft and clears published_at.
	Unpublish(ctx context.Context, actor *domain.User, id string) (*domain.Article, error)
	// Delete soft-deletes an article. There is no restore.
	Delete(ctx context.Context, actor *domain.User, id string) (*domain.Article, error)
	// GetArticle returns one article in any status for the admin surface.
	GetArticle(ctx context.Context, actor *domain.User, id string) (*domain.Article, error)
	// List returns a page of articles in any status, optionally filtered.
	List(ctx context.Context, actor *domain.User, opts domain.ListOptions) (*domain.ArticlePage, error)
	// GetPublished returns one published article by slug for the public
	// surface. Results are cached under the article's slug tag.
	GetPublished(ctx context.Context, slug string) (*domain.Article, error)
	// ListPublished returns a page of published articles for the public
	// surface. Results are cached under the global articles tag.
	ListPublished(ctx context.Context, opts domain.ListOptions) (*domain.ArticlePage, error)
}

// BlobStore persists uploaded binary objects and returns the public URL of
// the stored object.
type BlobStore interface {
	Put(ctx context.Context, name, contentType string, data io.Reader) (string, error)
}

// ImageUpload is one incoming image upload.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadResult describes a stored upload.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadServiceInterface validates and stores image uploads.
type UploadServiceInterface interface {
	UploadImage(ctx context.Context, actor *domain.User, upload ImageUpload) (*UploadResult, error)
}

// IdentityServiceInterface resolves an authenticated subject to a user
// record. A subject with no record is an error, never a silently created
// placeholder.
type IdentityServiceInterface interface {
	Resolve(ctx context.Context, userID string) (*domain.User, error)
}
