package cache

import (
	"context"
	"log/slog"

	"article-cms/internal/logger"
	"article-cms/internal/metrics"
)

// ArticleRevalidator fans out tag invalidation after article mutations.
// Invalidation runs strictly after the storage write commits; its own
// failure is logged and never propagated, so stale cache can never fail a
// committed write.
type ArticleRevalidator struct {
	store Store
}

// NewArticleRevalidator creates a revalidator over the given registry.
func NewArticleRevalidator(store Store) *ArticleRevalidator {
	return &ArticleRevalidator{store: store}
}

// Revalidate invalidates the full tag set touched by a mutation of one
// article: the global tag, the id tag, the slug tag (if slug is known), and
// the author tag (if authorID is known), always in that order. Safe to call
// redundantly.
func (r *ArticleRevalidator) Revalidate(ctx context.Context, id, slug, authorID string) {
	r.invalidate(ctx, ArticleGlobalTag(), "global")
	r.invalidate(ctx, ArticleIDTag(id), "id")

	if slug != "" {
		r.invalidate(ctx, ArticleSlugTag(slug), "slug")
	}
	if authorID != "" {
		r.invalidate(ctx, UserArticlesTag(authorID), "author")
	}
}

func (r *ArticleRevalidator) invalidate(ctx context.Context, tag, scope string) {
	if err := r.store.Invalidate(ctx, tag); err != nil {
		logger.WarnContext(ctx, "cache invalidation failed",
			slog.String("tag", tag),
			slog.String("error", err.Error()))
		return
	}
	metrics.CacheInvalidationsTotal.WithLabelValues(scope).Inc()
}
