// Package metrics содержит Prometheus метрики API дашборда.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "epi_dashboard"

// Metrics хранит счётчики и гистограммы сервиса на собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	payloadsGenerated *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
}

// New создаёт реестр с метриками процесса и Go runtime
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newWithRegistry(registry)
}

// NewNop создаёт метрики на пустом реестре, для тестов
func NewNop() *Metrics {
	return newWithRegistry(prometheus.NewRegistry())
}

func newWithRegistry(registry *prometheus.Registry) *Metrics {
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		httpRequestDuration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		payloadsGenerated: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generator",
				Name:      "payloads_total",
				Help:      "Total number of synthetic payloads produced by operation",
			},
			[]string{"operation"},
		),
		cacheLookups: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Reference data cache lookups by key and result (hit, miss, error)",
			},
			[]string{"key", "result"},
		),
	}
}

// Registry возвращает реестр для promhttp
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(route, method, statusCode string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

func (m *Metrics) RecordPayload(operation string) {
	m.payloadsGenerated.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordCacheLookup(key, result string) {
	m.cacheLookups.WithLabelValues(key, result).Inc()
}
