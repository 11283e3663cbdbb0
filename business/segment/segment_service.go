package segment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"customerSegment/domain"
	"customerSegment/pkg/logger"
	"customerSegment/pkg/metrics"
)

// FeatureScaler is the fitted preprocessing step.
type FeatureScaler interface {
	Kind() string
	Dims() int
	FeatureNames() []string
	Transform(x []float64) ([]float64, error)
	InverseTransform(x []float64) ([]float64, error)
}

// ClusterModel is the fitted clustering step.
type ClusterModel interface {
	Clusters() int
	Dims() int
	FeatureNames() []string
	Centers() [][]float64
	Predict(x []float64) (int, error)
}

// ErrInvalidFeatures is returned for vectors that are not three finite,
// non-negative numbers.
var ErrInvalidFeatures = errors.New("invalid customer features")

type SegmentService struct {
	scaler FeatureScaler
	model  ClusterModel
}

// NewSegmentService pairs a scaler with a model and checks that both were fit
// on the customer feature layout.
func NewSegmentService(scaler FeatureScaler, model ClusterModel) (*SegmentService, error) {
	want := len(domain.FeatureNames)
	if scaler.Dims() != want {
		return nil, fmt.Errorf("scaler has %d features, want %d", scaler.Dims(), want)
	}
	if model.Dims() != want {
		return nil, fmt.Errorf("model has %d features, want %d", model.Dims(), want)
	}

	for _, names := range [][]string{scaler.FeatureNames(), model.FeatureNames()} {
		if len(names) != 0 && !slices.Equal(names, domain.FeatureNames) {
			return nil, fmt.Errorf("artifact feature order %v does not match %v", names, domain.FeatureNames)
		}
	}

	return &SegmentService{
		scaler: scaler,
		model:  model,
	}, nil
}

func (s *SegmentService) Predict(ctx context.Context, features domain.CustomerFeatures) (domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when predicting segment", "error", err)
		return domain.Prediction{}, fmt.Errorf("context error: %w", err)
	}

	vector := features.Vector()
	for i, v := range vector {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return domain.Prediction{}, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidFeatures, domain.FeatureNames[i])
		}
	}

	start := time.Now()

	scaled, err := s.scaler.Transform(vector)
	if err != nil {
		logger.Error("Failed to scale features", "error", err)
		return domain.Prediction{}, fmt.Errorf("failed to scale features: %w", err)
	}

	cluster, err := s.model.Predict(scaled)
	if err != nil {
		logger.Error("Failed to assign cluster", "error", err)
		return domain.Prediction{}, fmt.Errorf("failed to assign cluster: %w", err)
	}

	metrics.SegmentPredictLatency.Observe(time.Since(start).Seconds())
	metrics.SegmentPredictions.WithLabelValues(strconv.Itoa(cluster)).Inc()

	return domain.Prediction{Segment: cluster}, nil
}

// Summary reports the loaded model with centroids mapped back to raw units.
func (s *SegmentService) Summary(ctx context.Context) (domain.ModelSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModelSummary{}, fmt.Errorf("context error: %w", err)
	}

	centers := s.model.Centers()
	centroids := make([][]float64, len(centers))
	for i, c := range centers {
		raw, err := s.scaler.InverseTransform(c)
		if err != nil {
			return domain.ModelSummary{}, fmt.Errorf("failed to unscale centroid %d: %w", i, err)
		}
		centroids[i] = raw
	}

	return domain.ModelSummary{
		Clusters:     s.model.Clusters(),
		FeatureNames: append([]string(nil), domain.FeatureNames...),
		ScalerKind:   s.scaler.Kind(),
		Centroids:    centroids,
	}, nil
}

func (s *SegmentService) Clusters() int {
	return s.model.Clusters()
}
