package providers

import (
	"fmt"
	"sync"
	"time"
)

// local mocks to avoid an import cycle with testutil
type stubLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *stubLogger) add(level, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, level+": "+fmt.Sprintf(format, args...))
}

func (m *stubLogger) Errorf(_ TypeEnum, format string, args ...interface{}) {
	m.add("error", format, args...)
}
func (m *stubLogger) Warnf(_ TypeEnum, format string, args ...interface{}) {
	m.add("warn", format, args...)
}
func (m *stubLogger) Debugf(_ TypeEnum, format string, args ...interface{}) {
	m.add("debug", format, args...)
}
func (m *stubLogger) Infof(_ TypeEnum, format string, args ...interface{}) {
	m.add("info", format, args...)
}
func (m *stubLogger) Fatalf(_ TypeEnum, format string, args ...interface{}) {
	m.add("fatal", format, args...)
}
func (m *stubLogger) Close() {}

func (m *stubLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

type mockMetrics struct {
	mu              sync.Mutex
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            int
	misses          int
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durationCalls++
}
func (m *mockMetrics) IncCacheHits()             { m.hits++ }
func (m *mockMetrics) IncCacheMisses()           { m.misses++ }
func (m *mockMetrics) IncWatchListChecks(_ bool) {}
func (m *mockMetrics) IncHubsMarkedStale(_ int)  {}
