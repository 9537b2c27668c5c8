package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/handler"
)

func TestGetHealth(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{}), http.MethodGet, "/healthz", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetRoot(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{}), http.MethodGet, "/", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"GlobeTrotter API","docs":"/openapi.yaml"}`, rec.Body.String())
}

func TestGetOpenAPI(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{}), http.MethodGet, "/openapi.yaml", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	assert.Contains(t, rec.Body.String(), "/api/trips/public/{public_url}")
}

func TestUnknownRoute_404(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{}), http.MethodGet, "/api/nope", nil, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
