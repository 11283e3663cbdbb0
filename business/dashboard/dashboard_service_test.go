package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"customerSegment/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePredictor struct {
	calls    int
	endpoint string
	features domain.CustomerFeatures
	segment  int
	err      error
	deadline bool
}

func (f *fakePredictor) PredictSegment(ctx context.Context, endpoint string, features domain.CustomerFeatures) (int, error) {
	f.calls++
	f.endpoint = endpoint
	f.features = features
	_, f.deadline = ctx.Deadline()
	return f.segment, f.err
}

type fakeDistribution struct {
	counts []domain.ClusterCount
	err    error
}

func (f *fakeDistribution) ClusterCounts() ([]domain.ClusterCount, error) {
	return f.counts, f.err
}

func envWith(values map[string]string) *EnvEndpoint {
	e := NewEnvEndpoint("API_URL")
	e.lookup = func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
	return e
}

func TestEnvEndpointResolve(t *testing.T) {
	got, err := envWith(map[string]string{"API_URL": " http://127.0.0.1:8000/predict "}).Resolve()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/predict", got)

	_, err = envWith(nil).Resolve()
	assert.ErrorIs(t, err, ErrEndpointNotConfigured)

	_, err = envWith(map[string]string{"API_URL": "  "}).Resolve()
	assert.ErrorIs(t, err, ErrEndpointNotConfigured)
}

func TestEnvEndpointReadsAtCallTime(t *testing.T) {
	e := NewEnvEndpoint("CUSTOMER_SEGMENT_TEST_URL")

	_, err := e.Resolve()
	require.ErrorIs(t, err, ErrEndpointNotConfigured)

	t.Setenv("CUSTOMER_SEGMENT_TEST_URL", "http://svc/predict")
	got, err := e.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "http://svc/predict", got)
}

func TestPredictMapsLabel(t *testing.T) {
	pred := &fakePredictor{segment: 1}
	svc := NewDashboardService(envWith(map[string]string{"API_URL": "http://svc/predict"}), pred, &fakeDistribution{}, time.Second)

	features := domain.CustomerFeatures{Recency: 10, Frequency: 2, Monetary: 150}
	res, err := svc.Predict(context.Background(), features)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Segment)
	assert.Equal(t, "High-Value", res.Label.Name)
	assert.Equal(t, "http://svc/predict", pred.endpoint)
	assert.Equal(t, features, pred.features)
	assert.True(t, pred.deadline, "request must carry the configured timeout")
}

func TestPredictUnknownSegment(t *testing.T) {
	svc := NewDashboardService(envWith(map[string]string{"API_URL": "http://svc"}), &fakePredictor{segment: 9}, &fakeDistribution{}, 0)

	res, err := svc.Predict(context.Background(), domain.CustomerFeatures{})
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownSegment, res.Label.Name)
}

func TestPredictWithoutEndpointMakesNoCall(t *testing.T) {
	pred := &fakePredictor{}
	svc := NewDashboardService(envWith(nil), pred, &fakeDistribution{}, time.Second)

	_, err := svc.Predict(context.Background(), domain.CustomerFeatures{Recency: 1})
	assert.ErrorIs(t, err, ErrEndpointNotConfigured)
	assert.Zero(t, pred.calls)
}

func TestPredictWrapsFailuresWithEndpoint(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewDashboardService(envWith(map[string]string{"API_URL": "http://svc/predict"}), &fakePredictor{err: boom}, &fakeDistribution{}, time.Second)

	_, err := svc.Predict(context.Background(), domain.CustomerFeatures{})
	require.ErrorIs(t, err, boom)

	var epErr *EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.Equal(t, "http://svc/predict", epErr.Endpoint)
}

func TestDistribution(t *testing.T) {
	counts := []domain.ClusterCount{{Cluster: 0, Count: 3}}
	svc := NewDashboardService(envWith(nil), &fakePredictor{}, &fakeDistribution{counts: counts}, 0)

	got, err := svc.Distribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, counts, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Distribution(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
