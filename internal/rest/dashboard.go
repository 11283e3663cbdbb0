package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"customerSegment/business/dashboard"
	"customerSegment/domain"
	"customerSegment/internal/repository/distribution"
	"customerSegment/internal/repository/predictor"
	"customerSegment/pkg/chart"
	"customerSegment/pkg/logger"
	"customerSegment/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type DashboardService interface {
	Predict(ctx context.Context, features domain.CustomerFeatures) (domain.SegmentResult, error)
	Distribution(ctx context.Context) ([]domain.ClusterCount, error)
}

// DashboardConfig names things the page shows to the user.
type DashboardConfig struct {
	EndpointKey      string
	DistributionName string
}

type DashboardHandler struct {
	dashboardService DashboardService
	validate         *validator.Validate
	cfg              DashboardConfig
	timeout          time.Duration
}

func NewDashboardHandler(dashboardService DashboardService, cfg DashboardConfig) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		validate:         newValidator(),
		cfg:              cfg,
		timeout:          30 * time.Second,
	}
}

type DashboardForm struct {
	Recency   float64 `form:"recency" validate:"gte=0"`
	Frequency float64 `form:"frequency" validate:"gte=0"`
	Monetary  float64 `form:"monetary" validate:"gte=0"`
}

func (f DashboardForm) Features() domain.CustomerFeatures {
	return domain.CustomerFeatures{
		Recency:   f.Recency,
		Frequency: f.Frequency,
		Monetary:  f.Monetary,
	}
}

const (
	alertSuccess = "success"
	alertWarning = "warning"
	alertError   = "error"
)

type alert struct {
	Level   string
	Message string
}

type distributionView struct {
	Counts  []domain.ClusterCount
	Total   int
	Warning string
	Error   string
}

type dashboardPage struct {
	Form         DashboardForm
	Alert        *alert
	Segments     []domain.SegmentLabel
	Distribution distributionView
}

// GET /
func (h *DashboardHandler) Index(c echo.Context) error {
	return h.render(c, DashboardForm{}, nil)
}

// POST /
func (h *DashboardHandler) Submit(c echo.Context) error {
	var form DashboardForm
	if err := c.Bind(&form); err != nil {
		metrics.DashboardSubmissions.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return h.render(c, form, &alert{Level: alertError, Message: invalidInputMessage})
	}
	if err := h.validate.Struct(&form); err != nil {
		metrics.DashboardSubmissions.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return h.render(c, form, &alert{Level: alertError, Message: invalidInputMessage})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.dashboardService.Predict(ctx, form.Features())
	if err != nil {
		outcome, message := h.describeFailure(err)
		metrics.DashboardSubmissions.WithLabelValues(outcome).Inc()
		return h.render(c, form, &alert{Level: alertError, Message: message})
	}

	metrics.DashboardSubmissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return h.render(c, form, &alert{Level: alertSuccess, Message: result.Message()})
}

// GET /chart.png
func (h *DashboardHandler) Chart(c echo.Context) error {
	counts, err := h.dashboardService.Distribution(c.Request().Context())
	if err != nil {
		if errors.Is(err, distribution.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, h.missingDistributionMessage())
		}
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	if len(counts) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no customers in distribution file")
	}

	var buf bytes.Buffer
	if err := chart.WriteDistributionPNG(&buf, counts); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

const invalidInputMessage = "Invalid input: recency, frequency and monetary must be non-negative numbers."

func (h *DashboardHandler) describeFailure(err error) (string, string) {
	var (
		statusErr   *predictor.StatusError
		endpointErr *dashboard.EndpointError
	)
	endpoint := ""
	if errors.As(err, &endpointErr) {
		endpoint = endpointErr.Endpoint
	}

	switch {
	case errors.Is(err, dashboard.ErrEndpointNotConfigured):
		return metrics.OutcomeNotConfigured, fmt.Sprintf(
			"Configuration error: %s is not set. Add it to the environment or the .env file.", h.cfg.EndpointKey)
	case errors.Is(err, predictor.ErrUnreachable):
		return metrics.OutcomeUnreachable, fmt.Sprintf(
			"Could not connect to the prediction service. Make sure the backend is running at %s.", endpoint)
	case errors.As(err, &statusErr):
		return metrics.OutcomeServerError, fmt.Sprintf("Server error: %d", statusErr.StatusCode)
	case errors.Is(err, predictor.ErrBadResponse):
		return metrics.OutcomeBadResponse, "Unexpected response from the prediction service."
	default:
		logger.Error("Unexpected prediction failure", "error", err)
		return metrics.OutcomeFailed, "Prediction failed. Please try again."
	}
}

func (h *DashboardHandler) missingDistributionMessage() string {
	return fmt.Sprintf("%s not found. Please ensure it exists in the same folder as this app.", h.cfg.DistributionName)
}

func (h *DashboardHandler) render(c echo.Context, form DashboardForm, a *alert) error {
	page := dashboardPage{
		Form:         form,
		Alert:        a,
		Segments:     domain.SegmentLabels(),
		Distribution: h.distribution(c.Request().Context()),
	}
	return c.Render(http.StatusOK, "dashboard.html", page)
}

func (h *DashboardHandler) distribution(ctx context.Context) distributionView {
	counts, err := h.dashboardService.Distribution(ctx)
	if err != nil {
		if errors.Is(err, distribution.ErrNotFound) {
			logger.Warn("Distribution file missing", "error", err)
			return distributionView{Warning: h.missingDistributionMessage()}
		}
		logger.Error("Failed to read distribution", "error", err)
		return distributionView{Error: fmt.Sprintf("Could not read %s: %v", h.cfg.DistributionName, err)}
	}

	view := distributionView{Counts: counts}
	for _, c := range counts {
		view.Total += c.Count
	}
	if view.Total == 0 {
		view.Warning = fmt.Sprintf("%s has no customers to plot.", h.cfg.DistributionName)
	}
	return view
}
