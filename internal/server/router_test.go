package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/common"
	"pinboard/internal/metrics"
)

type routeFunc func(r *mux.Router)

func (f routeFunc) RegisterRoutes(r *mux.Router) { f(r) }

func newTestRouter(checks map[string]HealthCheck) (http.Handler, *metrics.Metrics) {
	m := metrics.New()
	routes := Routes{
		routeFunc(func(r *mux.Router) {
			r.HandleFunc("/pins/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
				common.WriteJSON(w, http.StatusOK, map[string]string{"request_id": common.RequestIDFromContext(r.Context())})
			}).Methods(http.MethodGet)
			r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
				panic("boom")
			}).Methods(http.MethodGet)
		}),
	}
	h := NewRouter(RouterDeps{
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: m,
		Checks:  checks,
		Routes:  routes,
	})
	return h, m
}

func TestRouter_Health(t *testing.T) {
	tests := []struct {
		name     string
		checks   map[string]HealthCheck
		wantCode int
		wantBody string
	}{
		{
			name:     "all stores reachable",
			checks:   map[string]HealthCheck{"database": func(context.Context) error { return nil }},
			wantCode: http.StatusOK,
			wantBody: `"status":"ok"`,
		},
		{
			name:     "database down",
			checks:   map[string]HealthCheck{"database": func(context.Context) error { return errors.New("connection refused") }},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `"database":"connection refused"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newTestRouter(tc.checks)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	h, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pins/3", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pins/3", nil))
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)
}

func TestRouter_MetricsUseRouteTemplate(t *testing.T) {
	h, _ := newTestRouter(nil)

	for _, path := range []string{"/api/v1/pins/1", "/api/v1/pins/2"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pinboard_http_requests_total{method="GET",route="/api/v1/pins/{id:[0-9]+}",status="200"} 2`)
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	h, _ := newTestRouter(nil)

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/pins/3", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
