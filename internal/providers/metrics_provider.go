package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"hubdash/internal/services"
	"hubdash/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncWatchListChecks(matched bool)
	IncHubsMarkedStale(count int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	watchListChecks *prometheus.CounterVec
	hubsMarkedStale prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncWatchListChecks(matched bool) {
	result := "miss"
	if matched {
		result = "match"
	}
	m.watchListChecks.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) IncHubsMarkedStale(count int) {
	m.hubsMarkedStale.Add(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, store services.DataStoreInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hubdash_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hubdash_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hubdash_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hubdash_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		watchListChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hubdash_watchlist_checks_total",
			Help: "License plate checks against the watch list by outcome",
		}, []string{"result"}),

		hubsMarkedStale: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hubdash_hubs_marked_stale_total",
			Help: "Hubs switched offline by the heartbeat monitor",
		}),
	}

	for _, collection := range []string{"hubs", "cameras", "events", "speakers", "aiTriggers", "watchList"} {
		name := collection
		promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "hubdash_records",
			Help:        "Number of records per collection",
			ConstLabels: prometheus.Labels{"collection": name},
		}, func() float64 {
			return float64(store.Counts()[name])
		})
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "hubdash_store_version",
		Help: "Store mutation counter",
	}, func() float64 {
		return float64(store.Version())
	})

	return m
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncWatchListChecks(_ bool)                        {}
func (n *noopMetrics) IncHubsMarkedStale(_ int)                         {}
