package main

import (
	"log"
	"time"

	"helio_platform_go/config"
	"helio_platform_go/db"
	"helio_platform_go/handlers"
	"helio_platform_go/middleware"
	"helio_platform_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize object storage (R2 when configured, local disk otherwise)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes (no authentication required)
	e.POST("/api/auth/register", handlers.RegisterHandler)
	e.POST("/api/auth/login", handlers.LoginHandler)
	e.POST("/api/contact", handlers.SubmitContactQueryHandler)
	e.GET("/api/posts", handlers.ListPostsHandler)
	e.GET("/api/posts/:id", handlers.GetPostHandler)
	e.GET("/api/tags/search", handlers.SearchTagsHandler)

	// Authenticated routes
	protected := e.Group("/api")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/auth/logout", handlers.LogoutHandler)
		protected.GET("/auth/me", handlers.GetCurrentUserHandler)
		protected.PATCH("/users/me", handlers.UpdateCurrentUserHandler)
		protected.PATCH("/users/me/profile", handlers.UpdateProfileHandler)
		protected.PATCH("/users/me/social", handlers.UpdateSocialHandler)

		protected.POST("/feedback", handlers.SubmitFeedbackHandler)
		protected.POST("/support", handlers.SubmitSupportRequestHandler)

		// Technical issue report wizard
		protected.GET("/issues/draft", handlers.GetIssueDraftHandler)
		protected.PUT("/issues/draft", handlers.UpdateIssueDraftHandler)
		protected.DELETE("/issues/draft", handlers.ResetIssueDraftHandler)
		protected.POST("/issues/draft/files", handlers.UploadIssueAttachmentsHandler)
		protected.POST("/issues", handlers.SubmitIssueHandler)

		protected.POST("/posts", handlers.CreatePostHandler)
		protected.PATCH("/posts/:id", handlers.UpdatePostHandler)
	}

	// Admin-only routes
	admin := e.Group("/api/admin")
	admin.Use(middleware.RequireAuth())
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/contact", handlers.GetContactQueriesHandler)
		admin.PATCH("/contact/:id", handlers.UpdateContactQueryHandler)
		admin.GET("/feedback", handlers.GetFeedbackHandler)
		admin.PATCH("/feedback/:id", handlers.UpdateFeedbackHandler)
		admin.GET("/support", handlers.GetSupportRequestsHandler)
		admin.PATCH("/support/:id", handlers.UpdateSupportRequestHandler)
		admin.GET("/issues", handlers.GetTechnicalIssuesHandler)
		admin.PATCH("/issues/:id", handlers.UpdateTechnicalIssueHandler)

		admin.GET("/queries/counts", handlers.GetQueryCountsHandler)
		admin.GET("/queries/export", handlers.ExportQueriesHandler)

		admin.POST("/tags", handlers.CreateTagHandler)
		admin.PATCH("/tags/:id", handlers.UpdateTagHandler)
	}

	// Start background cleanup job (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
