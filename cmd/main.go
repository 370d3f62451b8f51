package main

import (
	"context"
	"net/http"

	"backoffice-service/internal/handler"
	mid "backoffice-service/internal/middleware"
	"backoffice-service/pkg/config"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/jwtutil"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/storage"
	"backoffice-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if present. Deployed environments configure through
	// real environment variables instead.
	godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting backoffice-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	err = database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Object storage client for image uploads
	presigner, err := storage.NewS3Presigner(context.Background(), &appConfig.S3)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	handler.InitUploads(presigner)
	handler.InitAuth(&appConfig.Auth)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public auth page locations
	e.GET("/api/auth/urls", handler.AuthURLs)

	// Everything below requires a valid JWT; the organization resolver runs
	// after it so every handler sees the caller's tenant context.
	api := e.Group("/api", mid.AuthMiddleware, mid.ResolveOrganization)

	// Organization onboarding and profile
	api.GET("/user/organization", handler.CheckUserOrganization)
	api.POST("/organizations", handler.CreateOrganization)
	api.GET("/organizations", handler.ListOrganizations)
	api.GET("/organizations/:id", handler.GetOrganization)
	api.PATCH("/organizations/:id", handler.UpdateOrganization)

	// Product catalog. The settings routes are registered before /:id so the
	// literal path wins.
	api.GET("/products/settings", handler.GetProductSettings)
	api.POST("/products/settings", handler.CreateProductSettings)
	api.PATCH("/products/settings", handler.UpdateProductSettings)
	api.GET("/products", handler.ListProducts)
	api.POST("/products", handler.CreateProduct)
	api.GET("/products/:id", handler.GetProduct)
	api.PATCH("/products/:id", handler.UpdateProduct)
	api.DELETE("/products/:id", handler.DeleteProduct)

	// Drops
	api.GET("/drops", handler.ListDrops)
	api.POST("/drops", handler.CreateDrop)
	api.GET("/drops/:id", handler.GetDrop)
	api.PATCH("/drops/:id", handler.UpdateDrop)
	api.DELETE("/drops/:id", handler.DeleteDrop)

	// Blog posts
	api.GET("/blog-posts", handler.ListPosts)
	api.POST("/blog-posts", handler.CreatePost)
	api.DELETE("/blog-posts/:slug", handler.DeletePost)

	// Website builder
	api.GET("/website", handler.GetWebsite)
	api.POST("/website", handler.SaveWebsite)

	// Sales and dashboard
	api.GET("/transactions", handler.ListTransactions)
	api.POST("/transactions", handler.CreateTransaction)
	api.GET("/dashboard/stats", handler.DashboardStats)
	api.GET("/dashboard/revenue", handler.RevenueOverTime)

	// Uploads
	api.POST("/upload/presign", handler.PresignUpload)
	api.POST("/upload/metadata", handler.RecordFileMetadata)
	api.GET("/s3-files", handler.ListFiles)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
