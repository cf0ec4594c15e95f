package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Codec operation metrics
	decodeOperationsTotal *prometheus.CounterVec
	decodeDuration        prometheus.Histogram
	blocksDecodedTotal    prometheus.Counter
	blocksSkippedTotal    *prometheus.CounterVec

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uffio_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uffio_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "uffio_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		decodeOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uffio_decode_operations_total",
				Help: "Total number of decode operations",
			},
			[]string{"status"},
		),

		decodeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "uffio_decode_duration_seconds",
				Help:    "Decode operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		blocksDecodedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "uffio_blocks_decoded_total",
				Help: "Total number of blocks decoded into records",
			},
		),

		blocksSkippedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uffio_blocks_skipped_total",
				Help: "Total number of blocks skipped during decoding",
			},
			[]string{"reason"},
		),

		authRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uffio_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),
	}

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDecode records one decode operation and its block outcomes
func (m *Metrics) RecordDecode(success bool, duration time.Duration, decoded, skippedUnknown, skippedInvalid int) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.decodeOperationsTotal.WithLabelValues(status).Inc()
	m.decodeDuration.Observe(duration.Seconds())
	m.blocksDecodedTotal.Add(float64(decoded))
	m.blocksSkippedTotal.WithLabelValues("unknown_tag").Add(float64(skippedUnknown))
	m.blocksSkippedTotal.WithLabelValues("malformed").Add(float64(skippedInvalid))
}

// RecordAuthRequest records an authentication request
func (m *Metrics) RecordAuthRequest(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler(rw, r)

		duration := time.Since(start)
		m.RecordHTTPRequest(method, endpoint, rw.statusCode, duration)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
