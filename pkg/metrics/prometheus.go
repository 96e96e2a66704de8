// Package metrics provides Prometheus metrics for the ET analysis service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metric configuration.
const (
	defaultNamespace = "etlab"
	defaultSubsystem = "analysis"
)

// Manager owns the Prometheus collectors for the service.
type Manager struct {
	namespace string
	subsystem string
	registry  prometheus.Registerer

	// Analysis metrics
	analysesTotal    *prometheus.CounterVec // by status
	invalidInputs    prometheus.Counter
	parseSkipped     prometheus.Counter
	stepsPerAnalysis prometheus.Histogram
	analysisDuration prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithRegistry sets a custom registerer, mainly for tests.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

var customRegistry = prometheus.NewRegistry()

var defaultManager *Manager

func init() {
	defaultManager = NewManager()
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
		registry:  customRegistry,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.analysesTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_total",
		Help:      "Completed analyses by overall status.",
	}, []string{"status"})

	m.invalidInputs = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_inputs_total",
		Help:      "Analysis requests rejected for invalid input.",
	})

	m.parseSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_skipped_lines_total",
		Help:      "Free-text input lines skipped as malformed.",
	})

	m.stepsPerAnalysis = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "steps_per_analysis",
		Help:      "Number of scored steps per analysis.",
		Buckets:   []float64{1, 3, 5, 8, 10, 15, 25},
	})

	m.analysisDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duration_ms",
		Help:      "Analysis duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 4, 8),
	}, []string{"endpoint", "method", "status_code"})
}

// Package-level helpers operating on the default manager.

// RecordAnalysis records one completed analysis with its status and size.
func RecordAnalysis(status string, steps int, durationMs float64) {
	defaultManager.analysesTotal.WithLabelValues(status).Inc()
	defaultManager.stepsPerAnalysis.Observe(float64(steps))
	defaultManager.analysisDuration.Observe(durationMs)
}

// RecordInvalidInput records a rejected analysis request.
func RecordInvalidInput() {
	defaultManager.invalidInputs.Inc()
}

// RecordParseSkippedLines records malformed free-text lines.
func RecordParseSkippedLines(n int) {
	defaultManager.parseSkipped.Add(float64(n))
}

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the Prometheus registry backing the default manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
