package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"customerSegment/business/segment"
	"customerSegment/domain"
	"customerSegment/pkg/logger"
	"customerSegment/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SegmentService interface {
	Predict(ctx context.Context, features domain.CustomerFeatures) (domain.Prediction, error)
	Summary(ctx context.Context) (domain.ModelSummary, error)
}

type SegmentHandler struct {
	segmentService SegmentService
	validate       *validator.Validate
	timeout        time.Duration
}

func NewSegmentHandler(segmentService SegmentService) *SegmentHandler {
	return &SegmentHandler{
		segmentService: segmentService,
		validate:       newValidator(),
		timeout:        10 * time.Second,
	}
}

// PredictRequest is the scoring payload. Pointers distinguish a missing field
// from an explicit zero.
type PredictRequest struct {
	Recency   *float64 `json:"recency" validate:"required,gte=0"`
	Frequency *float64 `json:"frequency" validate:"required,gte=0"`
	Monetary  *float64 `json:"monetary" validate:"required,gte=0"`
}

func (r PredictRequest) Features() domain.CustomerFeatures {
	return domain.CustomerFeatures{
		Recency:   *r.Recency,
		Frequency: *r.Frequency,
		Monetary:  *r.Monetary,
	}
}

// POST /predict
func (h *SegmentHandler) Predict(c echo.Context) error {
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		metrics.SegmentValidationFailures.Inc()
		logger.Debug("Failed to bind predict request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: bindMessage(err)})
	}

	if err := h.validate.Struct(&req); err != nil {
		metrics.SegmentValidationFailures.Inc()
		logger.Debug("Failed to validate predict request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{
			Message: "recency, frequency and monetary are required non-negative numbers",
			Errors:  fieldErrors(err),
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	prediction, err := h.segmentService.Predict(ctx, req.Features())
	if err != nil {
		if errors.Is(err, segment.ErrInvalidFeatures) {
			metrics.SegmentValidationFailures.Inc()
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to predict segment", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to predict segment"})
	}

	return c.JSON(http.StatusOK, prediction)
}

// GET /api/v1/model
func (h *SegmentHandler) GetModel(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.segmentService.Summary(ctx)
	if err != nil {
		logger.Error("Failed to summarize model", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
