package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"article-cms/internal/middleware"
	"article-cms/internal/service"
	"article-cms/internal/validator"
)

// UploadHandler handles image uploads for the editor.
type UploadHandler struct {
	uploadService service.UploadServiceInterface
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadImage handles POST /api/v1/admin/uploads
func (h *UploadHandler) UploadImage(c *gin.Context) {
	// Cap the multipart read before parsing; the service checks the
	// declared size again.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, validator.MaxUploadSize+1)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	result, err := h.uploadService.UploadImage(c.Request.Context(), middleware.GetUser(c), service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	})
	if err != nil {
		respondError(c, "Failed to upload image", err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
