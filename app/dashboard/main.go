package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpmetrics "customerSegment/app/echo-server/metrics"
	"customerSegment/app/echo-server/router"
	"customerSegment/business/dashboard"
	"customerSegment/internal/middleware"
	"customerSegment/internal/repository/distribution"
	"customerSegment/internal/repository/predictor"
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
	logger.Info("Starting dashboard", "version", cfg.App.Version)

	endpoint := dashboard.NewEnvEndpoint(cfg.Dashboard.EndpointKey)
	if _, err := endpoint.Resolve(); err != nil {
		// not fatal: the key is read again on every submission
		logger.Warn("Prediction endpoint not configured yet", "key", endpoint.Key())
	}

	// Init repo
	predictorRepo := predictor.NewPredictorRepository(cfg.Dashboard.RequestTimeout)
	distributionRepo := distribution.NewCSVRepository(cfg.Dashboard.DistributionPath)

	// Init service
	dashboardService := dashboard.NewDashboardService(endpoint, predictorRepo, distributionRepo, cfg.Dashboard.RequestTimeout)

	// Init handler
	dashboardHandler := rest.NewDashboardHandler(dashboardService, rest.DashboardConfig{
		EndpointKey:      endpoint.Key(),
		DistributionName: filepath.Base(distributionRepo.Path()),
	})

	metrics.InitDashboard()
	httpmetrics.Init()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rest.NewTemplateRenderer()
	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(httpmetrics.Middleware())
	e.Use(echomiddleware.BodyLimit("16K"))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	router.SetupDashboardRoutes(e, dashboardHandler)
	router.SetupOpsRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Dashboard.Port)
		logger.Info("Dashboard starting", "address", addr, "distribution", cfg.Dashboard.DistributionPath)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start dashboard", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down dashboard...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Dashboard shutdown error", "error", err)
	}

	logger.Info("Dashboard stopped")
}
