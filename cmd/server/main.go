package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"article-cms/internal/cache"
	"article-cms/internal/config"
	"article-cms/internal/handler"
	"article-cms/internal/infrastructure/blob"
	"article-cms/internal/infrastructure/database"
	"article-cms/internal/logger"
	"article-cms/internal/metrics"
	"article-cms/internal/middleware"
	"article-cms/internal/repository"
	"article-cms/internal/service"
	"article-cms/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Pick the tag store: Redis when configured, in-process otherwise
	var tagStore cache.Store
	var cachePinger handler.Pinger
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("error", err.Error()))
		}
		defer redisStore.Close()
		tagStore = redisStore
		cachePinger = redisStore
		logger.Info("Using redis tag store")
	} else {
		tagStore = cache.NewMemoryStore()
		logger.Info("Using in-memory tag store")
	}
	revalidator := cache.NewArticleRevalidator(tagStore)
	taggedCache := cache.NewTaggedCache(tagStore)

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool, revalidator)

	// Initialize blob storage for uploads
	blobStore, err := blob.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		logger.Fatal("Failed to create blob store",
			slog.String("error", err.Error()))
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, v, taggedCache, cfg.DefaultPageSize)
	uploadService := service.NewUploadService(blobStore, v)
	identityService := service.NewIdentityService(userRepo)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	publicHandler := handler.NewPublicHandler(articleService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	healthHandler := handler.NewHealthHandler(pool, cachePinger, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded images, unless they are served from elsewhere (CDN base URL)
	if strings.HasPrefix(cfg.UploadBaseURL, "/") {
		router.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public reader surface
		articles := v1.Group("/articles")
		{
			articles.GET("", publicHandler.ListPublished)
			articles.GET("/:slug", publicHandler.GetBySlug)
		}

		// Admin authoring surface
		admin := v1.Group("/admin", middleware.RequireAdmin(identityService))
		{
			admin.GET("/articles", articleHandler.ListArticles)
			admin.POST("/articles", articleHandler.CreateArticle)
			admin.GET("/articles/:id", articleHandler.GetArticle)
			admin.PUT("/articles/:id", articleHandler.UpdateArticle)
			admin.DELETE("/articles/:id", articleHandler.DeleteArticle)
			admin.POST("/articles/:id/publish", articleHandler.PublishArticle)
			admin.POST("/articles/:id/unpublish", articleHandler.UnpublishArticle)
			admin.POST("/uploads", uploadHandler.UploadImage)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
