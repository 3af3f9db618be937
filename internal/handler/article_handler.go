package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"article-cms/internal/document"
	"article-cms/internal/domain"
	"article-cms/internal/middleware"
	"article-cms/internal/service"
	"article-cms/internal/validator"
)

// ArticleHandler handles the admin article surface: authoring, publication
// and listing across all statuses.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ArticleRequest is the authoring payload for create and update.
type ArticleRequest struct {
	Title           string            `json:"title"`
	Content         document.Document `json:"content"`
	Excerpt         *string           `json:"excerpt,omitempty"`
	MetaTitle       *string           `json:"meta_title,omitempty"`
	MetaDescription *string           `json:"meta_description,omitempty"`
	FeaturedImage   *string           `json:"featured_image,omitempty"`
	// Publish creates the article directly in the published state.
	Publish bool `json:"publish,omitempty"`
}

func (r *ArticleRequest) toInput() *validator.ArticleInput {
	return &validator.ArticleInput{
		Title:           r.Title,
		Content:         r.Content,
		Excerpt:         r.Excerpt,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		FeaturedImage:   r.FeaturedImage,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Content         document.Document `json:"content"`
	Excerpt         *string           `json:"excerpt,omitempty"`
	Status          string            `json:"status"`
	PublishedAt     *string           `json:"published_at,omitempty"`
	AuthorID        string            `json:"author_id"`
	MetaTitle       *string           `json:"meta_title,omitempty"`
	MetaDescription *string           `json:"meta_description,omitempty"`
	FeaturedImage   *string           `json:"featured_image,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(article *domain.Article) ArticleResponse {
	response := ArticleResponse{
		ID:              article.ID,
		Title:           article.Title,
		Slug:            article.Slug,
		Content:         article.Content,
		Excerpt:         article.Excerpt,
		Status:          string(article.Status),
		AuthorID:        article.AuthorID,
		MetaTitle:       article.MetaTitle,
		MetaDescription: article.MetaDescription,
		FeaturedImage:   article.FeaturedImage,
		CreatedAt:       article.CreatedAt.Format(TimeFormat),
		UpdatedAt:       article.UpdatedAt.Format(TimeFormat),
	}
	if article.PublishedAt != nil {
		publishedAt := article.PublishedAt.Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	return response
}

// ArticleListResponse is one page of articles plus pagination metadata.
type ArticleListResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Pagination domain.Pagination `json:"pagination"`
}

func toArticleListResponse(page *domain.ArticlePage) ArticleListResponse {
	articles := make([]ArticleResponse, 0, len(page.Articles))
	for i := range page.Articles {
		articles = append(articles, toArticleResponse(&page.Articles[i]))
	}
	return ArticleListResponse{Articles: articles, Pagination: page.Pagination}
}

// respondError maps domain errors to HTTP status codes. Forbidden maps to
// 404 on purpose: the admin surface stays invisible to non-admins.
func respondError(c *gin.Context, op string, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case domain.IsPersistence(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("[request_id=%s] %s: %v", middleware.GetRequestID(c), op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// CreateArticle handles POST /api/v1/admin/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	actor := middleware.GetUser(c)
	var (
		article *domain.Article
		err     error
	)
	if req.Publish {
		article, err = h.articleService.SaveAndPublish(c.Request.Context(), actor, req.toInput())
	} else {
		article, err = h.articleService.SaveDraft(c.Request.Context(), actor, req.toInput())
	}
	if err != nil {
		respondError(c, "Failed to create article", err)
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// UpdateArticle handles PUT /api/v1/admin/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), middleware.GetUser(c), id, req.toInput())
	if err != nil {
		respondError(c, "Failed to update article", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// PublishArticle handles POST /api/v1/admin/articles/:id/publish
func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.articleService.Publish(c.Request.Context(), middleware.GetUser(c), id)
	if err != nil {
		respondError(c, "Failed to publish article", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// UnpublishArticle handles POST /api/v1/admin/articles/:id/unpublish
func (h *ArticleHandler) UnpublishArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.articleService.Unpublish(c.Request.Context(), middleware.GetUser(c), id)
	if err != nil {
		respondError(c, "Failed to unpublish article", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if _, err := h.articleService.Delete(c.Request.Context(), middleware.GetUser(c), id); err != nil {
		respondError(c, "Failed to delete article", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetArticle handles GET /api/v1/admin/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), middleware.GetUser(c), id)
	if err != nil {
		respondError(c, "Failed to get article", err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ListArticles handles GET /api/v1/admin/articles?page=&limit=&status=
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	opts, ok := parseListOptions(c)
	if !ok {
		return
	}

	page, err := h.articleService.List(c.Request.Context(), middleware.GetUser(c), opts)
	if err != nil {
		respondError(c, "Failed to list articles", err)
		return
	}

	c.JSON(http.StatusOK, toArticleListResponse(page))
}

// parseListOptions reads pagination and status query parameters. Malformed
// numbers are a 400; range checks happen in the service.
func parseListOptions(c *gin.Context) (domain.ListOptions, bool) {
	opts := domain.ListOptions{Page: 1}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
			return opts, false
		}
		opts.Page = page
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return opts, false
		}
		opts.Limit = limit
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ArticleStatus(raw)
		opts.Status = &status
	}

	return opts, true
}
