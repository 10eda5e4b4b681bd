package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "http_requests_total",
		Help:      "Number of handled HTTP requests.",
	}, []string{"method", "path", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orderdesk",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "orders_created_total",
		Help:      "Orders successfully persisted.",
	})

	OrdersDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "orders_deleted_total",
		Help:      "Orders removed (each triggers a renumbering pass).",
	})

	SequencerRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "sequencer_collision_retries_total",
		Help:      "Extra increment-and-check iterations taken by the order sequencer.",
	})
)

func init() {
	prometheus.MustRegister(
		httpRequests,
		httpDuration,
		OrdersCreated,
		OrdersDeleted,
		SequencerRetries,
	)
}

// Handler exposes the Prometheus text endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument records a counter and a latency sample per request. Paths are
// the registered route patterns, so cardinality stays bounded.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if pattern := r.Pattern; pattern != "" {
			path = pattern
		}

		httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
