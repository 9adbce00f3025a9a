// Package metrics provides Prometheus metrics for the batterlab service.
package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Breaker states as exported by the breaker_state gauge.
const (
	BreakerClosed   = 0
	BreakerHalfOpen = 1
	BreakerOpen     = 2
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace         string
	subsystem         string
	histogramBuckets  []float64
	runtimeCollectors bool
	registry          prometheus.Registerer

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// upstream providers
	providerFetches   *prometheus.CounterVec
	providerLatency   *prometheus.HistogramVec
	providerRetries   *prometheus.CounterVec
	breakerState      *prometheus.GaugeVec
	breakerRejected   *prometheus.CounterVec
	errorsByComponent *prometheus.CounterVec

	// sessions
	sessionsActive  prometheus.Gauge
	sessionsLoaded  prometheus.Counter
	sessionsEvicted prometheus.Counter
	pitchesLoaded   prometheus.Histogram

	// aggregation engine
	splitLatency *prometheus.HistogramVec

	// agent tools
	toolCalls *prometheus.CounterVec

	// process
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics manager

// customRegistry keeps the default Go metrics off /healthz unless asked for.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "batterlab",
		subsystem:        "",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.providerFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_fetches_total",
		Help:      "Upstream fetches by provider and outcome",
	}, []string{"provider", "outcome"})

	m.providerLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_fetch_latency_milliseconds",
		Help:      "Upstream fetch latency in milliseconds",
		Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	}, []string{"provider"})

	m.providerRetries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_retries_total",
		Help:      "Retried upstream fetches by provider",
	}, []string{"provider"})

	m.breakerState = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "breaker_state",
		Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
	}, []string{"breaker"})

	m.breakerRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "breaker_rejected_total",
		Help:      "Calls rejected by an open or saturated circuit breaker",
	}, []string{"breaker"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_component_total",
		Help:      "Total number of errors by component and type",
	}, []string{"component", "error_type"})

	m.sessionsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_active",
		Help:      "Sessions currently held in memory",
	})

	m.sessionsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_loaded_total",
		Help:      "Sessions created or reloaded",
	})

	m.sessionsEvicted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_evicted_total",
		Help:      "Sessions dropped to make room for new ones",
	})

	m.pitchesLoaded = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pitches_loaded",
		Help:      "Pitch rows per loaded session",
		Buckets:   []float64{0, 100, 500, 1000, 2500, 5000, 10000, 20000, 40000},
	})

	m.splitLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "split_latency_milliseconds",
		Help:      "Time to compute one split table in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"classifier"})

	m.toolCalls = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mcp_tool_calls_total",
		Help:      "MCP tool invocations by tool and status",
	}, []string{"tool", "status"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Heap memory in use in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	if m.runtimeCollectors {
		m.registry.MustRegister(collectors.NewGoCollector())
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordProviderFetch records one upstream fetch and its latency.
func RecordProviderFetch(provider, outcome string, latencyMs float64) {
	globalManager.providerFetches.WithLabelValues(provider, outcome).Inc()
	globalManager.providerLatency.WithLabelValues(provider).Observe(latencyMs)
}

// RecordProviderRetry counts a retried upstream fetch.
func RecordProviderRetry(provider string) {
	globalManager.providerRetries.WithLabelValues(provider).Inc()
}

// UpdateBreakerState sets the exported state of a named breaker.
func UpdateBreakerState(name string, state int) {
	globalManager.breakerState.WithLabelValues(name).Set(float64(state))
}

// RecordBreakerRejected counts a call refused by a breaker.
func RecordBreakerRejected(name string) {
	globalManager.breakerRejected.WithLabelValues(name).Inc()
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSessionsActive sets the number of live sessions.
func UpdateSessionsActive(count int) {
	globalManager.sessionsActive.Set(float64(count))
}

// RecordSessionLoaded counts a session load and its size.
func RecordSessionLoaded(pitches int) {
	globalManager.sessionsLoaded.Inc()
	globalManager.pitchesLoaded.Observe(float64(pitches))
}

// RecordSessionEvicted counts an evicted session.
func RecordSessionEvicted() {
	globalManager.sessionsEvicted.Inc()
}

// RecordSplitLatency records the time one classifier took.
func RecordSplitLatency(classifier string, latencyMs float64) {
	globalManager.splitLatency.WithLabelValues(classifier).Observe(latencyMs)
}

// RecordToolCall counts an MCP tool invocation.
func RecordToolCall(tool, status string) {
	globalManager.toolCalls.WithLabelValues(tool, status).Inc()
}

// UpdateSystemStats samples heap usage and goroutine count.
func UpdateSystemStats() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	globalManager.systemMemoryUsage.Set(float64(ms.HeapAlloc))
	globalManager.systemGoroutineCount.Set(float64(runtime.NumGoroutine()))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
