// Package server assembles the HTTP API and the gRPC health server.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"pinboard/internal/common"
	"pinboard/internal/metrics"
)

const APIPrefix = "/api/v1"

// RouteRegistrar mounts a component's routes on the API subrouter.
type RouteRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

type Routes []RouteRegistrar

// HealthCheck reports whether a backing store is reachable.
type HealthCheck func(ctx context.Context) error

type RouterDeps struct {
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Checks  map[string]HealthCheck
	Routes  Routes
}

func NewRouter(deps RouterDeps) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestID)

	api := router.PathPrefix(APIPrefix).Subrouter()
	api.Use(Observe(deps.Log, deps.Metrics))
	api.HandleFunc("/health", healthHandler(deps.Checks)).Methods(http.MethodGet)
	for _, r := range deps.Routes {
		r.RegisterRoutes(api)
	}

	router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(panicLogger{log: deps.Log}),
		handlers.PrintRecoveryStack(false),
	)
	return handlers.ProxyHeaders(cors(recovery(router)))
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		code := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		common.WriteJSON(w, code, resp)
	}
}

type panicLogger struct {
	log *slog.Logger
}

func (p panicLogger) Println(v ...interface{}) {
	p.log.Error("recovered from panic", "panic", v)
}
