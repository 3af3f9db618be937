package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"article-cms/internal/document"
	"article-cms/internal/domain"
)

// MaxUploadSize is the upload limit for images, in bytes.
const MaxUploadSize = 5 << 20 // 5MB

// Validator provides validation for authoring input. Content validation
// happens here, at the boundary: the repository stores content opaquely.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ArticleInput is the authoring payload validated before any repository
// call.
type ArticleInput struct {
	Title           string
	Content         document.Document
	Excerpt         *string
	FeaturedImage   *string
	MetaTitle       *string
	MetaDescription *string
}

// ValidateNewArticle validates input from the new-article flow, which
// restricts headings to levels 1-3.
func (v *Validator) ValidateNewArticle(in *ArticleInput) error {
	return v.validateArticle(in, document.NewArticleOptions())
}

// ValidateEditorArticle validates input from the editor flow, which allows
// headings 1-4.
func (v *Validator) ValidateEditorArticle(in *ArticleInput) error {
	return v.validateArticle(in, document.EditorOptions())
}

func (v *Validator) validateArticle(in *ArticleInput, opts document.ValidateOptions) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.By(notBlankRule),
		),
		validation.Field(&in.FeaturedImage,
			is.URL.Error("invalid_featured_image_url"),
		),
	)
	if err != nil {
		return convertValidationErrors(err)
	}

	if err := in.Content.Validate(opts); err != nil {
		return domain.NewValidationError("content", err.Error())
	}

	return nil
}

// ValidateStatus checks a status filter supplied by a caller.
func (v *Validator) ValidateStatus(status domain.ArticleStatus) error {
	if !domain.IsValidStatus(status) {
		return domain.NewValidationError("status", "status must be one of: draft, published, archived")
	}
	return nil
}

// ValidateUpload checks an image upload's declared type and size.
func (v *Validator) ValidateUpload(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return domain.NewValidationError("file", "file must be an image")
	}
	if size <= 0 {
		return domain.NewValidationError("file", "file is empty")
	}
	if size > MaxUploadSize {
		return domain.NewValidationError("file", "file size must be less than 5MB")
	}
	return nil
}

func notBlankRule(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("title_required", "title is required")
	}
	return nil
}

// convertValidationErrors flattens ozzo validation errors into the domain
// taxonomy so callers see a single error shape.
func convertValidationErrors(err error) error {
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			return domain.NewValidationError(field, fieldErr.Error())
		}
	}
	return domain.NewValidationError("", err.Error())
}
