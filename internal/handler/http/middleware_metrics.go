package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the collectors of one Handler. Each Handler owns its
// registry so several can live in one process.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
	noteOperations  *prometheus.CounterVec
}

func newMetrics(registry *prometheus.Registry) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		}),
		noteOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notes_operations_total",
			Help: "Total number of successful note operations",
		}, []string{"operation"}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// noteOperation counts a successful create, update or delete.
func (m *metrics) noteOperation(op string) {
	m.noteOperations.WithLabelValues(op).Inc()
}

// withMetrics records request counts and latency labelled by the chi route
// pattern, so /api/notes/1 and /api/notes/2 share a series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		h.metrics.activeRequests.Inc()
		defer h.metrics.activeRequests.Dec()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		h.metrics.requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		h.metrics.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
