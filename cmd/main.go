package main

import (
	"context"

	"carmarket-service/internal/catalog"
	"carmarket-service/internal/handler"
	mid "carmarket-service/internal/middleware"
	"carmarket-service/internal/searchsync"
	"carmarket-service/pkg/config"
	"carmarket-service/pkg/database"
	"carmarket-service/pkg/jwtutil"
	"carmarket-service/pkg/logger"
	"carmarket-service/pkg/search"
	"carmarket-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting carmarket-service",
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

	db := database.GetDB()

	// Search index client and synchronization services
	index := search.NewTypesenseClient(&appConfig.Typesense, log)
	lookup := catalog.NewLookupService(db)
	indexer := searchsync.NewListingIndexer(index, lookup, log)
	indexer.Start(context.Background())
	pipeline := searchsync.NewPipeline(db, index, appConfig.Catalog.MasterDir, log)
	log.Info("Search index client initialized",
		zap.String("typesense_url", appConfig.Typesense.URL()))

	deps := &handler.Deps{
		DB:       db,
		Lookup:   lookup,
		Indexer:  indexer,
		Pipeline: pipeline,
	}

	brandHandler := handler.NewBrandHandler(deps)
	catalogHandler := handler.NewCatalogHandler(deps)
	searchHandler := handler.NewSearchHandler(deps)
	listingHandler := handler.NewListingHandler(deps)

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
	e.GET("/health", handler.Health)

	// Catalog API routes - public read surface
	e.GET("/api/brands", brandHandler.ListBrands)
	e.GET("/api/catalog/detail", catalogHandler.Detail)

	// Search API routes - sync is admin-only
	e.GET("/api/search/car-models", searchHandler.SearchCarModels)
	e.POST("/api/search/sync", searchHandler.Sync, mid.AuthMiddleware, mid.AdminMiddleware)

	// Listing API routes - reads are public, writes require auth
	e.GET("/api/listings", listingHandler.ListListings)
	e.GET("/api/listings/:id", listingHandler.GetListing)
	listingAPI := e.Group("/api/listings", mid.AuthMiddleware)
	listingAPI.GET("/my", listingHandler.ListMyListings)
	listingAPI.POST("", listingHandler.CreateListing)
	listingAPI.PUT("/:id", listingHandler.UpdateListing)
	listingAPI.DELETE("/:id", listingHandler.DeleteListing)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
