package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-cms/internal/domain"
)

const articleColumns = `id, title, slug, content, excerpt, status, published_at,
	author_id, meta_title, meta_description, featured_image, deleted_at, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool        *pgxpool.Pool
	revalidator Revalidator
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool, revalidator Revalidator) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool, revalidator: revalidator}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var a domain.Article
	var content []byte

	err := row.Scan(&a.ID, &a.Title, &a.Slug, &content, &a.Excerpt, &a.Status,
		&a.PublishedAt, &a.AuthorID, &a.MetaTitle, &a.MetaDescription,
		&a.FeaturedImage, &a.DeletedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &a.Content); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}

	return &a, nil
}

// Insert creates a new article row and triggers cache revalidation keyed by
// the new article's id, slug, and author.
func (r *PostgresArticleRepository) Insert(ctx context.Context, data domain.NewArticle) (*domain.Article, error) {
	content, err := json.Marshal(data.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}

	status := data.Status
	if status == "" {
		status = domain.StatusDraft
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO articles (title, slug, content, excerpt, status, published_at, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+articleColumns,
		data.Title, data.Slug, content, data.Excerpt, status, data.PublishedAt, data.AuthorID)

	article, err := scanArticle(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.NewPersistenceError("insert article", fmt.Errorf("slug %q already exists: %w", data.Slug, err))
		}
		return nil, domain.NewPersistenceError("insert article", err)
	}

	r.revalidator.Revalidate(ctx, article.ID, article.Slug, article.AuthorID)

	return article, nil
}

// Update applies a partial field update to a non-deleted row and triggers
// cache revalidation for the resulting row's identity.
func (r *PostgresArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	arg := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Slug != nil {
		appendSet("slug", *patch.Slug)
	}
	if patch.Content != nil {
		content, err := json.Marshal(*patch.Content)
		if err != nil {
			return nil, fmt.Errorf("marshal content: %w", err)
		}
		appendSet("content", content)
	}
	if patch.Excerpt != nil {
		appendSet("excerpt", *patch.Excerpt)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
	}
	if patch.PublishedAt != nil {
		appendSet("published_at", *patch.PublishedAt)
	} else if patch.ClearPublishedAt {
		sets = append(sets, "published_at = NULL")
	}
	if patch.MetaTitle != nil {
		appendSet("meta_title", *patch.MetaTitle)
	}
	if patch.MetaDescription != nil {
		appendSet("meta_description", *patch.MetaDescription)
	}
	if patch.FeaturedImage != nil {
		appendSet("featured_image", *patch.FeaturedImage)
	}

	query := fmt.Sprintf(`
		UPDATE articles
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING %s`, strings.Join(sets, ", "), arg, articleColumns)
	args = append(args, id)

	article, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update article %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.NewPersistenceError("update article", fmt.Errorf("slug already exists: %w", err))
		}
		return nil, domain.NewPersistenceError("update article", err)
	}

	r.revalidator.Revalidate(ctx, article.ID, article.Slug, article.AuthorID)

	return article, nil
}

// SoftDelete marks a non-deleted row deleted and triggers cache
// revalidation.
func (r *PostgresArticleRepository) SoftDelete(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING `+articleColumns, id)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("delete article %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, domain.NewPersistenceError("delete article", err)
	}

	r.revalidator.Revalidate(ctx, article.ID, article.Slug, article.AuthorID)

	return article, nil
}

// GetByID returns the article or nil when no non-deleted row matches.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE id = $1 AND deleted_at IS NULL`, id)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewPersistenceError("get article by id", err)
	}
	return article, nil
}

// GetBySlug returns the article in any status, or nil.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE slug = $1 AND deleted_at IS NULL`, slug)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewPersistenceError("get article by slug", err)
	}
	return article, nil
}

// GetPublishedBySlug returns the article only when published, or nil.
func (r *PostgresArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE slug = $1 AND status = 'published' AND deleted_at IS NULL`, slug)

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewPersistenceError("get published article by slug", err)
	}
	return article, nil
}

// List returns a page of non-deleted articles ordered by created_at
// descending.
func (r *PostgresArticleRepository) List(ctx context.Context, opts domain.ListOptions) (*domain.ArticlePage, error) {
	if opts.Page < 1 || opts.Limit < 1 {
		return nil, domain.NewValidationError("pagination", "page and limit must be positive")
	}

	where := "deleted_at IS NULL"
	args := []any{}
	if opts.Status != nil {
		where += " AND status = $1"
		args = append(args, *opts.Status)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM articles WHERE "+where, args...).Scan(&total); err != nil {
		return nil, domain.NewPersistenceError("count articles", err)
	}

	offset := (opts.Page - 1) * opts.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, articleColumns, where, len(args)+1, len(args)+2)
	args = append(args, opts.Limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewPersistenceError("list articles", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, opts.Limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan article", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("list articles", err)
	}

	return &domain.ArticlePage{
		Articles:   articles,
		Pagination: domain.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

// ListPublished forces the status filter to published.
func (r *PostgresArticleRepository) ListPublished(ctx context.Context, opts domain.ListOptions) (*domain.ArticlePage, error) {
	published := domain.StatusPublished
	opts.Status = &published
	return r.List(ctx, opts)
}
