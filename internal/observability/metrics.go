package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
)

const defaultMetricsNamespace = "fantasy_cricket"

// Metrics holds the Prometheus collectors for the acquisition pipeline and the HTTP surface.
// It satisfies usecase.MetricsRecorder.
type Metrics struct {
	namespace string
	registry  *prometheus.Registry
	buckets   []float64

	sourceAttempts  *prometheus.CounterVec
	publishes       *prometheus.CounterVec
	publishDuration prometheus.Histogram
	lookupFallbacks *prometheus.CounterVec
	queries         *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

type MetricsOption func(*Metrics)

func WithMetricsNamespace(namespace string) MetricsOption {
	return func(m *Metrics) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

func WithMetricsBuckets(buckets []float64) MetricsOption {
	return func(m *Metrics) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithRuntimeCollectors adds the Go runtime and process collectors to the registry.
func WithRuntimeCollectors() MetricsOption {
	return func(m *Metrics) {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// NewMetrics registers every collector on a private registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	m := &Metrics{
		namespace: defaultMetricsNamespace,
		registry:  prometheus.NewRegistry(),
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.sourceAttempts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "acquisition",
		Name:      "source_attempts_total",
		Help:      "Fetch attempts against cricket data endpoints by source and outcome",
	}, []string{"source", "outcome"})

	m.publishes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "snapshot",
		Name:      "publishes_total",
		Help:      "Snapshots published by status",
	}, []string{"status"})

	m.publishDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "snapshot",
		Name:      "build_duration_seconds",
		Help:      "Time from acquisition start to snapshot publish",
		Buckets:   m.buckets,
	})

	m.lookupFallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "squad",
		Name:      "lookup_fallbacks_total",
		Help:      "Name and weather lookups that fell back to generated values",
	}, []string{"kind"})

	m.queries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "assistant",
		Name:      "queries_total",
		Help:      "Queries routed by intent",
	}, []string{"intent"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration by route and method",
		Buckets:   m.buckets,
	}, []string{"route", "method"})

	return m
}

func (m *Metrics) ObserveAttempt(sourceName string, outcome source.Outcome) {
	m.sourceAttempts.WithLabelValues(sourceName, string(outcome)).Inc()
}

func (m *Metrics) ObservePublish(status snapshot.Status, duration time.Duration) {
	m.publishes.WithLabelValues(string(status)).Inc()
	m.publishDuration.Observe(duration.Seconds())
}

func (m *Metrics) ObserveLookupFallback(kind string) {
	m.lookupFallbacks.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveQuery(intent string) {
	m.queries.WithLabelValues(intent).Inc()
}

func (m *Metrics) ObserveHTTPRequest(route, method string, statusCode int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
