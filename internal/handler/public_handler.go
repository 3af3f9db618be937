package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"article-cms/internal/domain"
	"article-cms/internal/service"
)

// PublicHandler handles the public reader surface. Only published articles
// are reachable here; drafts and archived articles answer 404.
type PublicHandler struct {
	articleService service.ArticleServiceInterface
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(articleService service.ArticleServiceInterface) *PublicHandler {
	return &PublicHandler{
		articleService: articleService,
	}
}

// ArticleSummaryResponse is one entry of the public listing. Preview is the
// excerpt when set, otherwise plain text extracted from the content.
type ArticleSummaryResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Preview       string  `json:"preview"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	PublishedAt   *string `json:"published_at,omitempty"`
}

// PublicArticleResponse is the public detail view: the structured content
// plus its server-rendered HTML.
type PublicArticleResponse struct {
	ArticleResponse
	HTML string `json:"html"`
}

// PublicListResponse is one page of the public listing.
type PublicListResponse struct {
	Articles   []ArticleSummaryResponse `json:"articles"`
	Pagination domain.Pagination        `json:"pagination"`
}

func toArticleSummary(article *domain.Article, previewLength int) ArticleSummaryResponse {
	summary := ArticleSummaryResponse{
		ID:            article.ID,
		Title:         article.Title,
		Slug:          article.Slug,
		Preview:       article.Preview(previewLength),
		FeaturedImage: article.FeaturedImage,
	}
	if article.PublishedAt != nil {
		publishedAt := article.PublishedAt.Format(TimeFormat)
		summary.PublishedAt = &publishedAt
	}
	return summary
}

// ListPublished handles GET /api/v1/articles?page=&limit=&view=
// The card view trims previews shorter for compact layouts.
func (h *PublicHandler) ListPublished(c *gin.Context) {
	opts, ok := parseListOptions(c)
	if !ok {
		return
	}
	// The public listing never filters by status; it is published-only by
	// construction.
	opts.Status = nil

	previewLength := ListingPreviewLength
	if c.Query("view") == "card" {
		previewLength = CardPreviewLength
	}

	page, err := h.articleService.ListPublished(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list published articles", err)
		return
	}

	articles := make([]ArticleSummaryResponse, 0, len(page.Articles))
	for i := range page.Articles {
		articles = append(articles, toArticleSummary(&page.Articles[i], previewLength))
	}

	c.JSON(http.StatusOK, PublicListResponse{
		Articles:   articles,
		Pagination: page.Pagination,
	})
}

// GetBySlug handles GET /api/v1/articles/:slug
func (h *PublicHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.articleService.GetPublished(c.Request.Context(), slug)
	if err != nil {
		respondError(c, "Failed to get published article", err)
		return
	}

	c.JSON(http.StatusOK, PublicArticleResponse{
		ArticleResponse: toArticleResponse(article),
		HTML:            article.Content.HTML(),
	})
}
