package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics объединяет все prometheus-коллекторы сервиса:
// HTTP запросы, обращения к бэкенду Saha API и работу кеша.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	cacheOperationsTotal *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry и возвращает Metrics.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the Saha API backend",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Saha API request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		cacheOperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_operations_total",
			Help:        "Cache lookups by result (hit, miss, error)",
			ConstLabels: constLabels,
		}, []string{"cache", "result"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest фиксирует обращение к бэкенду.
func (m *Metrics) ObserveUpstreamRequest(operation string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// CacheHit фиксирует попадание в кеш.
func (m *Metrics) CacheHit(cache string) {
	m.cacheOperationsTotal.WithLabelValues(cache, "hit").Inc()
}

// CacheMiss фиксирует промах кеша.
func (m *Metrics) CacheMiss(cache string) {
	m.cacheOperationsTotal.WithLabelValues(cache, "miss").Inc()
}

// CacheError фиксирует ошибку обращения к кешу.
func (m *Metrics) CacheError(cache string) {
	m.cacheOperationsTotal.WithLabelValues(cache, "error").Inc()
}
