package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/middleware"
)

func logOnce(t *testing.T, status int) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("hello"))
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/cities/", nil)
	// Stand-in for chimiddleware.RequestID.
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	req = req.WithContext(ctx)
	req.RemoteAddr = "203.0.113.7:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, status, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogLogger_logsRequestFields(t *testing.T) {
	entry := logOnce(t, http.StatusOK)

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/cities/", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 5, entry["bytes"])
	assert.Equal(t, "203.0.113.7", entry["remote_ip"])
	assert.Equal(t, "test-req-id", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	assert.Equal(t, "WARN", logOnce(t, http.StatusNotFound)["level"])
	assert.Equal(t, "ERROR", logOnce(t, http.StatusInternalServerError)["level"])
}
