package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"article-cms/internal/domain"
	"article-cms/internal/service"
)

const (
	// IdentityHeader carries the authenticated subject id, set by the
	// reverse proxy in front of this service. Requests never reach the
	// admin surface unauthenticated; this middleware only maps the subject
	// to a user record and enforces the admin role.
	IdentityHeader = "X-User-ID"
	// UserKey is the context key under which the resolved user is stored.
	UserKey = "current_user"
)

// RequireAdmin resolves the request's subject to a user record and aborts
// unless that user is an admin. Non-admins and unknown subjects get 404,
// not 403: the admin surface does not reveal its existence.
func RequireAdmin(identity service.IdentityServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetHeader(IdentityHeader)
		if subject == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		user, err := identity.Resolve(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			log.Printf("[request_id=%s] Failed to resolve identity: %v", GetRequestID(c), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		if !user.CanAccessAdmin() {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// GetUser retrieves the resolved user from the gin context.
func GetUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(UserKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
