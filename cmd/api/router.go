package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"douren-backend/internal/shared/middleware"
	"douren-backend/internal/shared/response"
	"douren-backend/pkg/container"
)

// setupRouter registers all routes. Route groups mirror the domain
// packages; admin routes stack AdminMiddleware on top of auth.
func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	v1.GET("/health", healthCheck(c))

	// Public listing endpoints
	v1.GET("/artists", c.ArtistHandler.List)
	v1.GET("/artists/:id", c.ArtistHandler.Get)
	v1.GET("/artists/:id/products", c.ArtistHandler.ListProducts)
	v1.GET("/tags", c.TagHandler.List)
	v1.GET("/events", c.EventHandler.List)
	v1.GET("/events/:eventName/artists", c.EventHandler.ListArtists)

	// Auth
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}

	v1.POST("/invites/validate", c.InviteHandler.ValidateCode)

	// CMS endpoints (authenticated)
	cms := v1.Group("")
	cms.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		cms.GET("/users/me", c.UserHandler.Me)
		cms.PUT("/users/me/password", c.UserHandler.ChangePassword)

		cms.GET("/invites/me", c.InviteHandler.MySettings)
		cms.POST("/invites/me/regenerate", c.InviteHandler.RegenerateCode)
		cms.GET("/invites/me/history", c.InviteHandler.MyHistory)

		cms.POST("/artists", c.ArtistHandler.Create)
		cms.PUT("/artists/:id", c.ArtistHandler.Update)
		cms.DELETE("/artists/:id", c.ArtistHandler.Delete)
		cms.PUT("/artists/:id/tags", c.ArtistHandler.SetTags)
		cms.POST("/artists/:id/photo", c.ArtistHandler.UploadPhoto)
		cms.POST("/artists/:id/products", c.ArtistHandler.CreateProduct)
		cms.DELETE("/artists/:id/products/:productId", c.ArtistHandler.DeleteProduct)
	}

	// Appearance routes keyed by numeric event id
	appearances := v1.Group("/event-artists")
	appearances.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		appearances.POST("/:id", c.EventHandler.CreateAppearance)
		appearances.PUT("/:id/:artistId", c.EventHandler.UpdateAppearance)
		appearances.DELETE("/:id/:artistId", c.EventHandler.DeleteAppearance)
		appearances.POST("/:id/:artistId/dm", c.EventHandler.UploadDM)
	}

	// Admin endpoints
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("/tags", c.TagHandler.Create)
		admin.PUT("/tags/:name", c.TagHandler.Rename)
		admin.DELETE("/tags/:name", c.TagHandler.Delete)
		admin.POST("/tags/sync", c.TagHandler.SyncCounts)

		admin.POST("/events", c.EventHandler.Create)
		admin.GET("/events/:id", c.EventHandler.Get)
		admin.PUT("/events/:id", c.EventHandler.Update)
		admin.DELETE("/events/:id", c.EventHandler.Delete)
		admin.POST("/events/:id/default", c.EventHandler.SetDefault)
		admin.POST("/events/:id/backfill", c.EventHandler.Backfill)

		admin.PUT("/invites/:userId", c.InviteHandler.AdminUpdateSettings)

		admin.GET("/users", c.UserHandler.AdminList)
		admin.PUT("/users/:id/role", c.UserHandler.AdminSetRole)
		admin.PUT("/users/:id/status", c.UserHandler.AdminSetStatus)
	}

	return router
}

// healthCheck reports db and redis status. Redis being down degrades
// the service but does not fail the check.
func healthCheck(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{"database": "ok", "redis": "ok"}
		status := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
		}

		if status != http.StatusOK {
			response.ErrorWithDetails(ctx, status, "UNHEALTHY", "Service unhealthy", checks)
			return
		}
		response.Success(ctx, status, "OK", gin.H{
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
