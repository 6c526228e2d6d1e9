// Package metrics exposes Prometheus metrics for HTTP requests and task
// store operations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/task-api/internal/store"
)

// Store operation results used as the "result" label.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Manager owns the application's Prometheus collectors.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storeOperations     *prometheus.CounterVec
	storeDuration       *prometheus.HistogramVec
}

// DefaultNamespace prefixes every application metric unless WithNamespace
// is given.
const DefaultNamespace = "tasks"

// New creates a Manager with its own registry holding the Go runtime and
// process collectors.
func New(opts ...Option) *Manager {
	m := &Manager{
		namespace: DefaultNamespace,
		registry:  prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	m.storeOperations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "store_operations_total",
		Help:      "Total number of task store operations by operation and result",
	}, []string{"operation", "result"})

	m.storeDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Task store operation latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
}

// ObserveHTTPRequest records one served request.
func (m *Manager) ObserveHTTPRequest(route, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// ObserveStoreOperation records one store call and classifies its error.
func (m *Manager) ObserveStoreOperation(operation string, err error, d time.Duration) {
	m.storeOperations.WithLabelValues(operation, resultLabel(err)).Inc()
	m.storeDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Registry returns the registry the metrics are registered on. Extra
// collectors, such as database pool statistics, are added through it.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case store.IsNotFoundError(err):
		return ResultNotFound
	default:
		return ResultError
	}
}
