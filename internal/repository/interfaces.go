package repository

import (
	"context"

	"article-cms/internal/domain"
)

// Revalidator fans out cache-tag invalidation after a committed mutation.
// Implementations must never fail the mutation: invalidation is best-effort
// eventual, storage is authoritative.
type Revalidator interface {
	Revalidate(ctx context.Context, id, slug, authorID string)
}

// ArticleRepository defines methods for article data access. All operations
// exclude soft-deleted rows, and every mutating operation triggers cache
// revalidation after the storage write commits.
type ArticleRepository interface {
	// Insert creates a new article and returns the persisted row including
	// generated id and timestamps.
	Insert(ctx context.Context, data domain.NewArticle) (*domain.Article, error)
	// Update applies a partial update plus a fresh updated_at to a
	// non-deleted row. Returns domain.ErrNotFound if no such row exists.
	Update(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error)
	// SoftDelete marks a non-deleted row logically deleted. Delete is
	// terminal: no restore path exists.
	SoftDelete(ctx context.Context, id string) (*domain.Article, error)
	// GetByID returns the article or nil when no non-deleted row matches.
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	// GetBySlug returns the article in any status, or nil.
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// GetPublishedBySlug returns the article only when published, or nil.
	// The public reader path: drafts must never leak.
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// List returns a page ordered by created_at descending, optionally
	// filtered to one status.
	List(ctx context.Context, opts domain.ListOptions) (*domain.ArticlePage, error)
	// ListPublished is List with the status forced to published; the sole
	// data source for the public listing page.
	ListPublished(ctx context.Context, opts domain.ListOptions) (*domain.ArticlePage, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Insert creates a user.
	Insert(ctx context.Context, user *domain.User) error
	// GetByID returns the user or nil when missing.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail returns the user or nil when missing.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
