package dashboard

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEndpointNotConfigured is returned when the prediction endpoint address
// has not been provided.
var ErrEndpointNotConfigured = errors.New("prediction endpoint is not configured")

// EnvEndpoint resolves the prediction endpoint from the process environment on
// every call, so a rotated secret is picked up without a restart.
type EnvEndpoint struct {
	key    string
	lookup func(string) (string, bool)
}

func NewEnvEndpoint(key string) *EnvEndpoint {
	return &EnvEndpoint{key: key, lookup: os.LookupEnv}
}

func (e *EnvEndpoint) Key() string {
	return e.key
}

func (e *EnvEndpoint) Resolve() (string, error) {
	val, _ := e.lookup(e.key)
	val = strings.TrimSpace(val)
	if val == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrEndpointNotConfigured, e.key)
	}
	return val, nil
}
