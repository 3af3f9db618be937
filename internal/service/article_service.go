package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"article-cms/internal/cache"
	"article-cms/internal/domain"
	"article-cms/internal/metrics"
	"article-cms/internal/repository"
	"article-cms/internal/validator"
)

// ArticleService implements ArticleServiceInterface over the article
// repository, with a tagged read-through cache in front of the public
// reader paths. Admin reads always hit storage.
type ArticleService struct {
	articles  repository.ArticleRepository
	validator *validator.Validator
	cache     *cache.TaggedCache
	pageSize  int
	now       func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository, v *validator.Validator, c *cache.TaggedCache, defaultPageSize int) *ArticleService {
	return &ArticleService{
		articles:  articles,
		validator: v,
		cache:     c,
		pageSize:  defaultPageSize,
		now:       time.Now,
	}
}

// authorize gates every mutating path. Storage is never touched on behalf
// of a non-admin actor.
func authorize(actor *domain.User, op string) error {
	if !actor.CanAccessAdmin() {
		return fmt.Errorf("%s: %w", op, domain.ErrForbidden)
	}
	return nil
}

// SaveDraft creates a new draft article.
func (s *ArticleService) SaveDraft(ctx context.Context, actor *domain.User, in *validator.ArticleInput) (*domain.Article, error) {
	if err := authorize(actor, "save draft"); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateNewArticle(in); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	article, err := s.articles.Insert(ctx, domain.NewArticle{
		Title:    title,
		Slug:     domain.Slugify(title),
		Content:  in.Content,
		Excerpt:  in.Excerpt,
		Status:   domain.StatusDraft,
		AuthorID: actor.ID,
	})
	metrics.ObserveMutation("create", err)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return article, nil
}

// SaveAndPublish creates a new article directly in the published state.
func (s *ArticleService) SaveAndPublish(ctx context.Context, actor *domain.User, in *validator.ArticleInput) (*domain.Article, error) {
	if err := authorize(actor, "save and publish"); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateNewArticle(in); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	publishedAt := s.now()
	article, err := s.articles.Insert(ctx, domain.NewArticle{
		Title:       title,
		Slug:        domain.Slugify(title),
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Status:      domain.StatusPublished,
		PublishedAt: &publishedAt,
		AuthorID:    actor.ID,
	})
	metrics.ObserveMutation("create", err)
	if err != nil {
		return nil, fmt.Errorf("failed to save and publish: %w", err)
	}
	return article, nil
}

// Update rewrites an existing article from the editor flow. The slug is
// recomputed from the incoming title, so renaming an article moves its
// public URL.
func (s *ArticleService) Update(ctx context.Context, actor *domain.User, id string, in *validator.ArticleInput) (*domain.Article, error) {
	if err := authorize(actor, "update article"); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateEditorArticle(in); err != nil {
		return nil, err
	}

	existing, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load article %s: %w", id, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("update article %s: %w", id, domain.ErrNotFound)
	}

	title := strings.TrimSpace(in.Title)
	slug := domain.Slugify(title)
	patch := domain.ArticlePatch{
		Title:           &title,
		Slug:            &slug,
		Content:         &in.Content,
		Excerpt:         in.Excerpt,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		FeaturedImage:   in.FeaturedImage,
	}

	article, err := s.articles.Update(ctx, id, patch)
	metrics.ObserveMutation("update", err)
	if err != nil {
		return nil, fmt.Errorf("failed to update article %s: %w", id, err)
	}
	return article, nil
}

// Publish sets an article to published and stamps published_at with the
// current time. The previous state is not consulted: publishing an already
// published article just refreshes the timestamp.
func (s *ArticleService) Publish(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	if err := authorize(actor, "publish article"); err != nil {
		return nil, err
	}

	status := domain.StatusPublished
	publishedAt := s.now()
	article, err := s.articles.Update(ctx, id, domain.ArticlePatch{
		Status:      &status,
		PublishedAt: &publishedAt,
	})
	metrics.ObserveMutation("publish", err)
	if err != nil {
		return nil, fmt.Errorf("failed to publish article %s: %w", id, err)
	}
	return article, nil
}

// Unpublish sets an article back to draft and clears published_at.
func (s *ArticleService) Unpublish(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	if err := authorize(actor, "unpublish article"); err != nil {
		return nil, err
	}

	status := domain.StatusDraft
	article, err := s.articles.Update(ctx, id, domain.ArticlePatch{
		Status:           &status,
		ClearPublishedAt: true,
	})
	metrics.ObserveMutation("unpublish", err)
	if err != nil {
		return nil, fmt.Errorf("failed to unpublish article %s: %w", id, err)
	}
	return article, nil
}

// Delete soft-deletes an article.
func (s *ArticleService) Delete(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	if err := authorize(actor, "delete article"); err != nil {
		return nil, err
	}

	article, err := s.articles.SoftDelete(ctx, id)
	metrics.ObserveMutation("delete", err)
	if err != nil {
		return nil, fmt.Errorf("failed to delete article %s: %w", id, err)
	}
	return article, nil
}

// GetArticle returns one article in any status for the admin surface.
func (s *ArticleService) GetArticle(ctx context.Context, actor *domain.User, id string) (*domain.Article, error) {
	if err := authorize(actor, "get article"); err != nil {
		return nil, err
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get article %s: %w", id, err)
	}
	if article == nil {
		return nil, fmt.Errorf("get article %s: %w", id, domain.ErrNotFound)
	}
	return article, nil
}

// List returns a page of articles for the admin surface, uncached.
func (s *ArticleService) List(ctx context.Context, actor *domain.User, opts domain.ListOptions) (*domain.ArticlePage, error) {
	if err := authorize(actor, "list articles"); err != nil {
		return nil, err
	}
	opts = s.normalize(opts)
	if opts.Status != nil {
		if err := s.validator.ValidateStatus(*opts.Status); err != nil {
			return nil, err
		}
	}

	page, err := s.articles.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return page, nil
}

// GetPublished returns one published article by slug. The result, including
// a miss, is cached under the slug tag until a mutation touching that slug
// invalidates it.
func (s *ArticleService) GetPublished(ctx context.Context, slug string) (*domain.Article, error) {
	key := fmt.Sprintf("article:published:%s", slug)
	tags := []string{cache.ArticleSlugTag(slug)}

	v, err := s.cache.GetOrCompute(ctx, key, tags, func(ctx context.Context) (any, error) {
		return s.articles.GetPublishedBySlug(ctx, slug)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get published article %s: %w", slug, err)
	}

	article, _ := v.(*domain.Article)
	if article == nil {
		return nil, fmt.Errorf("get published article %s: %w", slug, domain.ErrNotFound)
	}
	return article, nil
}

// ListPublished returns a page of published articles. Pages are cached per
// page/limit pair under the global tag, so any article mutation expires
// every cached listing page at once.
func (s *ArticleService) ListPublished(ctx context.Context, opts domain.ListOptions) (*domain.ArticlePage, error) {
	opts = s.normalize(opts)
	key := fmt.Sprintf("articles:published:page=%d:limit=%d", opts.Page, opts.Limit)
	tags := []string{cache.ArticleGlobalTag()}

	v, err := s.cache.GetOrCompute(ctx, key, tags, func(ctx context.Context) (any, error) {
		return s.articles.ListPublished(ctx, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}

	page, ok := v.(*domain.ArticlePage)
	if !ok {
		return nil, fmt.Errorf("list published articles: unexpected cached value type %T", v)
	}
	return page, nil
}

func (s *ArticleService) normalize(opts domain.ListOptions) domain.ListOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = s.pageSize
	}
	return opts
}
