package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jsonres "customerSegment/pkg/response"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, method string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	e.Use(RequestID())
	e.Use(RequestLogger())
	e.Add(method, "/thing", handler)

	req := httptest.NewRequest(method, "/thing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandlerHTTPError(t *testing.T) {
	rec := serve(t, http.MethodGet, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported media type")
	})

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	var body jsonres.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", body.Code)
	assert.Equal(t, "unsupported media type", body.Message)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	rec := serve(t, http.MethodGet, func(c echo.Context) error {
		return errors.New("db password is hunter2")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")

	var body jsonres.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
}

func TestErrorHandlerHead(t *testing.T) {
	rec := serve(t, http.MethodHead, func(c echo.Context) error {
		return echo.ErrNotFound
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
