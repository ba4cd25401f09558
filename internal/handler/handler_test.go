package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fsanano/listing-admin/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	err   error
	delay time.Duration
}

func (f *fakeBackend) Ping(ctx context.Context) error {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func newHandler(backend handler.Pinger, cfg handler.Config) *handler.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewHandler(backend, log, cfg)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	h := newHandler(&fakeBackend{err: errors.New("down")}, handler.Config{})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "listing-admin", body["service"])
}

func TestReadyCheck_OK(t *testing.T) {
	h := newHandler(&fakeBackend{}, handler.Config{})

	req := httptest.NewRequest(http.MethodGet, "/v1/ready", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])
}

func TestReadyCheck_BackendDown(t *testing.T) {
	h := newHandler(&fakeBackend{err: errors.New("supabase api error: status 401: Invalid API key")}, handler.Config{})

	req := httptest.NewRequest(http.MethodGet, "/v1/ready", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["error"], "Invalid API key")
}

func TestReadyCheck_Timeout(t *testing.T) {
	h := newHandler(&fakeBackend{delay: time.Second}, handler.Config{ReadyTimeout: 10 * time.Millisecond})

	req := httptest.NewRequest(http.MethodGet, "/v1/ready", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCORS_Preflight(t *testing.T) {
	h := newHandler(&fakeBackend{}, handler.Config{AllowedOrigins: []string{"https://app.example.test"}})

	req := httptest.NewRequest(http.MethodOptions, "/v1/health", nil)
	req.Header.Set("Origin", "https://app.example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	h := newHandler(&fakeBackend{}, handler.Config{AllowedOrigins: []string{"https://app.example.test"}})

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("Origin", "https://evil.example.test")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	h := newHandler(&fakeBackend{}, handler.Config{})

	req := httptest.NewRequest(http.MethodGet, "/v1/listings", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
