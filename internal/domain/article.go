package domain

import (
	"math"
	"time"

	"article-cms/internal/document"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ValidStatuses contains all valid article statuses. Archived is a
// reachable status value with no operation setting it; the enum value is
// preserved pending product clarification.
var ValidStatuses = []ArticleStatus{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status ArticleStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Article is the central entity: a rich-content article with a publication
// lifecycle and soft-delete support. Content is the single source of truth
// for rendering; Excerpt is an independently editable preview string, never
// derived from Content at write time.
type Article struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Content         document.Document `json:"content"`
	Excerpt         *string           `json:"excerpt,omitempty"`
	Status          ArticleStatus     `json:"status"`
	PublishedAt     *time.Time        `json:"published_at,omitempty"`
	AuthorID        string            `json:"author_id"`
	MetaTitle       *string           `json:"meta_title,omitempty"`
	MetaDescription *string           `json:"meta_description,omitempty"`
	FeaturedImage   *string           `json:"featured_image,omitempty"`
	DeletedAt       *time.Time        `json:"deleted_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// IsDeleted reports whether the article is soft-deleted.
func (a *Article) IsDeleted() bool {
	return a.DeletedAt != nil
}

// Preview returns the excerpt when one is set, falling back to a
// plain-text preview derived from the content, truncated to limit runes.
func (a *Article) Preview(limit int) string {
	if a.Excerpt != nil && *a.Excerpt != "" {
		return *a.Excerpt
	}
	return a.Content.Preview(limit)
}

// NewArticle holds the fields required to insert an article. ID and
// timestamps are assigned by the store.
type NewArticle struct {
	Title       string
	Slug        string
	Content     document.Document
	Excerpt     *string
	Status      ArticleStatus
	PublishedAt *time.Time
	AuthorID    string
}

// ArticlePatch is a partial update. Nil fields are left untouched.
// ClearPublishedAt distinguishes "set published_at to NULL" from "leave it
// alone", which a plain *time.Time cannot express.
type ArticlePatch struct {
	Title            *string
	Slug             *string
	Content          *document.Document
	Excerpt          *string
	Status           *ArticleStatus
	PublishedAt      *time.Time
	ClearPublishedAt bool
	MetaTitle        *string
	MetaDescription  *string
	FeaturedImage    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Slug == nil && p.Content == nil &&
		p.Excerpt == nil && p.Status == nil && p.PublishedAt == nil &&
		!p.ClearPublishedAt && p.MetaTitle == nil &&
		p.MetaDescription == nil && p.FeaturedImage == nil
}

// ListOptions selects a page of articles. Status, when set, filters the
// listing to one publication state.
type ListOptions struct {
	Page   int
	Limit  int
	Status *ArticleStatus
}

// Pagination describes the page of results returned by a listing.
type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// NewPagination derives pagination metadata from a page request and the
// total row count.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// ArticlePage is one page of a listing plus its pagination metadata.
type ArticlePage struct {
	Articles   []Article  `json:"articles"`
	Pagination Pagination `json:"pagination"`
}
