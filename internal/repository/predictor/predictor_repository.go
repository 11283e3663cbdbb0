package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"customerSegment/domain"
)

var (
	// ErrUnreachable means no HTTP response was received from the endpoint.
	ErrUnreachable = errors.New("prediction service unreachable")
	// ErrBadResponse means a 2xx response did not carry a segment id.
	ErrBadResponse = errors.New("unexpected response from prediction service")
)

// StatusError reports a non-2xx response from the prediction service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("prediction service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("prediction service returned %d: %s", e.StatusCode, e.Body)
}

type PredictorRepository struct {
	client *http.Client
}

func NewPredictorRepository(timeout time.Duration) *PredictorRepository {
	return &PredictorRepository{
		client: &http.Client{Timeout: timeout},
	}
}

type predictResponse struct {
	Segment *int `json:"segment"`
}

// PredictSegment posts one feature vector to endpoint and returns the cluster id.
func (r *PredictorRepository) PredictSegment(ctx context.Context, endpoint string, features domain.CustomerFeatures) (int, error) {
	payload, err := json.Marshal(features)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build request for %q: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, &StatusError{
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var out predictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if out.Segment == nil {
		return 0, fmt.Errorf("%w: missing segment", ErrBadResponse)
	}

	return *out.Segment, nil
}
