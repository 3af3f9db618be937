package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"article-cms/internal/domain"
	"article-cms/internal/middleware"
	"article-cms/internal/mocks"
)

var testifyAnyCtx = mock.Anything

func setupAuthRouter(identity *mocks.MockIdentityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/ping", middleware.RequireAdmin(identity), func(c *gin.Context) {
		user := middleware.GetUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	admin := &domain.User{ID: "admin-1", Role: "admin"}

	t.Run("admin passes and is available to the handler", func(t *testing.T) {
		identity := new(mocks.MockIdentityService)
		identity.On("Resolve", testifyAnyCtx, "admin-1").Return(admin, nil)
		router := setupAuthRouter(identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(middleware.IdentityHeader, "admin-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin-1")
	})

	t.Run("missing header yields 404", func(t *testing.T) {
		identity := new(mocks.MockIdentityService)
		router := setupAuthRouter(identity)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		identity.AssertNotCalled(t, "Resolve", testifyAnyCtx, "")
	})

	t.Run("unknown subject yields 404, not 403", func(t *testing.T) {
		identity := new(mocks.MockIdentityService)
		identity.On("Resolve", testifyAnyCtx, "ghost").Return(nil, domain.ErrNotFound)
		router := setupAuthRouter(identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(middleware.IdentityHeader, "ghost")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-admin role yields 404", func(t *testing.T) {
		identity := new(mocks.MockIdentityService)
		identity.On("Resolve", testifyAnyCtx, "user-1").Return(&domain.User{ID: "user-1", Role: "user"}, nil)
		router := setupAuthRouter(identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(middleware.IdentityHeader, "user-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("resolver failure yields 500", func(t *testing.T) {
		identity := new(mocks.MockIdentityService)
		identity.On("Resolve", testifyAnyCtx, "admin-1").Return(nil, errors.New("db down"))
		router := setupAuthRouter(identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set(middleware.IdentityHeader, "admin-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
