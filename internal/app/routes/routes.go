package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/studentdesk/internal/app/controllers"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/middleware"
)

// Options carries the route settings that come from configuration
type Options struct {
	// UploadsDir is served statically under /uploads
	UploadsDir string
	// MetricsPath exposes Prometheus metrics when not empty
	MetricsPath string
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	resourceController *controllers.ResourceController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
	opts Options,
) {
	// Every route sees the request identity
	router.Use(authMiddleware.Session())

	// --- Public browse routes ---
	router.GET("/", catalogController.Home)
	router.GET("/papers", catalogController.ListPapers)
	router.GET("/notes", catalogController.ListNotes)
	router.GET("/branch/:name", catalogController.ListByBranch)
	router.GET("/subject/:name", catalogController.ListBySubject)
	router.GET("/download/:id", resourceController.Download)

	// Stored PDFs
	router.Static("/uploads", opts.UploadsDir)

	// --- Session routes ---
	admin := router.Group("/admin")
	{
		admin.POST("/login", authController.AdminLogin)
		admin.POST("/logout", authController.AdminLogout)
	}

	student := router.Group("/student")
	{
		student.POST("/register", authController.StudentRegister)
		student.POST("/login", authController.StudentLogin)
		student.POST("/logout", authController.StudentLogout)
	}

	router.GET("/me", authController.Me)

	// --- Admin only routes ---
	adminOnly := router.Group("")
	adminOnly.Use(authMiddleware.RequireAdmin())
	{
		adminOnly.POST("/upload", resourceController.UploadResource)
		adminOnly.POST("/delete/:id", resourceController.DeleteResource)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	if opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, gin.WrapH(promhttp.Handler()))
	}
}
