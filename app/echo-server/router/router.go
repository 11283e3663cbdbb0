package router

import (
	"customerSegment/app/echo-server/metrics"
	"customerSegment/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupSegmentRoutes(e *echo.Echo, handler *rest.SegmentHandler) {
	e.POST("/predict", handler.Predict)

	api := e.Group("/api/v1")
	api.GET("/model", handler.GetModel)
}

func SetupDashboardRoutes(e *echo.Echo, handler *rest.DashboardHandler) {
	e.GET("/", handler.Index)
	e.POST("/", handler.Submit)
	e.GET("/chart.png", handler.Chart)
}

// SetupOpsRoutes exposes liveness and Prometheus endpoints.
func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/health", rest.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), metrics.Skip())
}
