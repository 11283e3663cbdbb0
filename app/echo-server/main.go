package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpmetrics "customerSegment/app/echo-server/metrics"
	"customerSegment/app/echo-server/router"
	"customerSegment/business/segment"
	"customerSegment/internal/middleware"
	"customerSegment/internal/repository/artifact"
	"customerSegment/internal/rest"
	"customerSegment/pkg/config"
	"customerSegment/pkg/logger"
	"customerSegment/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment, logger.FileOptions{
		Path:       cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logger.Sync()
	logger.Info("Starting prediction service", "name", cfg.App.Name, "version", cfg.App.Version)

	// Artifacts are loaded once and shared read-only by every request
	artifactRepo := artifact.NewArtifactRepository()

	scalerArtifact, err := artifactRepo.LoadScaler(cfg.Artifact.ScalerPath)
	if err != nil {
		logger.Fatal("Failed to load scaler", "path", cfg.Artifact.ScalerPath, "error", err)
	}
	modelArtifact, err := artifactRepo.LoadKMeans(cfg.Artifact.ModelPath)
	if err != nil {
		logger.Fatal("Failed to load model", "path", cfg.Artifact.ModelPath, "error", err)
	}

	scaler, err := segment.NewScaler(scalerArtifact)
	if err != nil {
		logger.Fatal("Invalid scaler artifact", "path", cfg.Artifact.ScalerPath, "error", err)
	}
	model, err := segment.NewKMeans(modelArtifact)
	if err != nil {
		logger.Fatal("Invalid model artifact", "path", cfg.Artifact.ModelPath, "error", err)
	}

	segmentService, err := segment.NewSegmentService(scaler, model)
	if err != nil {
		logger.Fatal("Scaler and model are incompatible", "error", err)
	}
	logger.Info("Artifacts loaded", "clusters", model.Clusters(), "scaler", scaler.Kind())

	// Init metrics
	metrics.Init()
	httpmetrics.Init()
	metrics.SegmentClusters.Set(float64(model.Clusters()))

	// Init handler
	segmentHandler := rest.NewSegmentHandler(segmentService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(httpmetrics.Middleware())
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	router.SetupSegmentRoutes(e, segmentHandler)
	router.SetupOpsRoutes(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
