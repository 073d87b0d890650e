// Package metrics owns the prometheus registry for the API process.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	EventUserRegistered  = "user_registered"
	EventFriendRequested = "friend_requested"
	EventFriendAccepted  = "friend_accepted"
	EventFriendRejected  = "friend_rejected"
	EventBoardCreated    = "board_created"
	EventPictureCreated  = "picture_created"
	EventPinCreated      = "pin_created"
	EventRepinCreated    = "repin_created"
	EventLike            = "like"
	EventUnlike          = "unlike"
	EventComment         = "comment"
	EventStreamCreated   = "stream_created"
)

// Recorder counts domain events. Services depend on this instead of the
// registry.
type Recorder interface {
	RecordEvent(event string)
}

// Nop discards events.
type Nop struct{}

func (Nop) RecordEvent(string) {}

type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	events   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pinboard_http_requests_total",
			Help: "HTTP requests by method, route template and status.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pinboard_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route template.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pinboard_domain_events_total",
			Help: "Successful domain writes by event.",
		}, []string{"event"}),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordEvent(event string) {
	m.events.WithLabelValues(event).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
