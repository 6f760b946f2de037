package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hubdash/internal/services"
	"hubdash/internal/structures"
)

func swapRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	})
	return reg
}

func seededStore() services.DataStoreInterface {
	return services.NewDataStore(&structures.Config{Store: structures.StoreConfig{Seed: true}})
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, seededStore())
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncWatchListChecks(true)
	m.IncHubsMarkedStale(2)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	swapRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, seededStore())
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

// gathered returns the value of the first sample named name whose labels
// include every pair in labels.
func gathered(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range mf.GetMetric() {
			have := map[string]string{}
			for _, lp := range metric.GetLabel() {
				have[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if have[k] != v {
					continue metrics
				}
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			}
		}
	}
	t.Fatalf("metric %s%v not found", name, labels)
	return 0
}

func TestMetricsProvider_Counters(t *testing.T) {
	reg := swapRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, seededStore())

	m.IncRequestsTotal("/api/hubs", 200)
	m.IncRequestsTotal("/api/hubs", 404)
	m.ObserveRequestDuration("/api/hubs", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncWatchListChecks(true)
	m.IncWatchListChecks(false)
	m.IncWatchListChecks(false)
	m.IncHubsMarkedStale(3)

	assert.Equal(t, float64(1), gathered(t, reg, "hubdash_requests_total", map[string]string{"endpoint": "/api/hubs", "status": "2xx"}))
	assert.Equal(t, float64(1), gathered(t, reg, "hubdash_watchlist_checks_total", map[string]string{"result": "match"}))
	assert.Equal(t, float64(2), gathered(t, reg, "hubdash_watchlist_checks_total", map[string]string{"result": "miss"}))
	assert.Equal(t, float64(3), gathered(t, reg, "hubdash_hubs_marked_stale_total", nil))
}

func TestMetricsProvider_CollectionGauges(t *testing.T) {
	reg := swapRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	NewMetricsProvider(conf, seededStore())

	assert.Equal(t, float64(3), gathered(t, reg, "hubdash_records", map[string]string{"collection": "hubs"}))
	assert.Equal(t, float64(6), gathered(t, reg, "hubdash_records", map[string]string{"collection": "cameras"}))
	assert.Equal(t, float64(7), gathered(t, reg, "hubdash_records", map[string]string{"collection": "events"}))
	assert.Equal(t, float64(2), gathered(t, reg, "hubdash_records", map[string]string{"collection": "watchList"}))
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{204, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
