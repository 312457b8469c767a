// Package metrics holds the Prometheus collectors for ingestion and the HTTP API.
// Collectors are registry-scoped so tests can use an isolated registry. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mediahub"

type Metrics struct {
	RenditionDuration  *prometheus.HistogramVec
	RenditionsInFlight prometheus.Gauge
	EncodeQueueWait    prometheus.Histogram
	Ingestions         *prometheus.CounterVec
	CleanupErrors      prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RenditionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rendition_duration_seconds",
			Help:      "Wall-clock time of one rendition encode.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 2400},
		}, []string{"rendition", "result"}),
		RenditionsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "renditions_in_flight",
			Help:      "Encoder processes currently running.",
		}),
		EncodeQueueWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "encode_slot_wait_seconds",
			Help:      "Time a rendition waited for a free encode slot.",
			Buckets:   prometheus.DefBuckets,
		}),
		Ingestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestions_total",
			Help:      "Finished ingestions by result.",
		}, []string{"result"}),
		CleanupErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_cleanup_errors_total",
			Help:      "Secondary errors while removing partial output or sources.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.RenditionDuration,
		m.RenditionsInFlight,
		m.EncodeQueueWait,
		m.Ingestions,
		m.CleanupErrors,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) ObserveRendition(name string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.RenditionDuration.WithLabelValues(name, result(err)).Observe(d.Seconds())
}

func (m *Metrics) RenditionStarted() {
	if m != nil {
		m.RenditionsInFlight.Inc()
	}
}

func (m *Metrics) RenditionFinished() {
	if m != nil {
		m.RenditionsInFlight.Dec()
	}
}

func (m *Metrics) ObserveSlotWait(d time.Duration) {
	if m != nil {
		m.EncodeQueueWait.Observe(d.Seconds())
	}
}

// IngestionDone counts a finished ingestion. label is "success", "failed" or
// "source_missing".
func (m *Metrics) IngestionDone(label string) {
	if m != nil {
		m.Ingestions.WithLabelValues(label).Inc()
	}
}

func (m *Metrics) CleanupError() {
	if m != nil {
		m.CleanupErrors.Inc()
	}
}

// Handler exposes the gatherer at /metrics.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by the mux pattern,
// which keeps label cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush keeps server-sent events working through the middleware.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func result(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}
