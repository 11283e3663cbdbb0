package dashboard

import (
	"context"
	"fmt"
	"time"

	"customerSegment/domain"
	"customerSegment/pkg/logger"
)

type EndpointResolver interface {
	Resolve() (string, error)
}

type PredictorRepository interface {
	PredictSegment(ctx context.Context, endpoint string, features domain.CustomerFeatures) (int, error)
}

type DistributionRepository interface {
	ClusterCounts() ([]domain.ClusterCount, error)
}

// EndpointError carries the address a failed prediction was sent to.
type EndpointError struct {
	Endpoint string
	Err      error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("predict via %s: %v", e.Endpoint, e.Err)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

type DashboardService struct {
	endpoint     EndpointResolver
	predictor    PredictorRepository
	distribution DistributionRepository
	timeout      time.Duration
}

func NewDashboardService(endpoint EndpointResolver, predictor PredictorRepository, distribution DistributionRepository, timeout time.Duration) *DashboardService {
	return &DashboardService{
		endpoint:     endpoint,
		predictor:    predictor,
		distribution: distribution,
		timeout:      timeout,
	}
}

// Predict sends one submission to the prediction service and labels the
// result. The endpoint is resolved first; when it is missing no request is made.
func (s *DashboardService) Predict(ctx context.Context, features domain.CustomerFeatures) (domain.SegmentResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SegmentResult{}, fmt.Errorf("context error: %w", err)
	}

	endpoint, err := s.endpoint.Resolve()
	if err != nil {
		logger.Warn("Prediction endpoint not configured", "error", err)
		return domain.SegmentResult{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	segment, err := s.predictor.PredictSegment(ctx, endpoint, features)
	if err != nil {
		logger.Error("Prediction request failed", "endpoint", endpoint, "error", err)
		return domain.SegmentResult{}, &EndpointError{Endpoint: endpoint, Err: err}
	}

	label := domain.LabelFor(segment)
	logger.Info("Segment predicted", "segment", segment, "label", label.Name)

	return domain.SegmentResult{Segment: segment, Label: label}, nil
}

// Distribution returns the per-cluster customer counts from the local export.
func (s *DashboardService) Distribution(ctx context.Context) ([]domain.ClusterCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.distribution.ClusterCounts()
}
