package testutil

import (
	"sync"
	"time"

	"hubdash/internal/models"
	"hubdash/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu              sync.Mutex
	Requests        map[string]int
	CacheHits       int
	CacheMisses     int
	WatchListHits   int
	WatchListMisses int
	StaleHubs       int
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Requests == nil {
		m.Requests = make(map[string]int)
	}
	m.Requests[endpoint]++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncWatchListChecks(matched bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if matched {
		m.WatchListHits++
	} else {
		m.WatchListMisses++
	}
}
func (m *MockMetrics) IncHubsMarkedStale(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StaleHubs += count
}

// MockNotifier implements providers.NotifierInterface and records what
// would have been published.
type MockNotifier struct {
	mu            sync.Mutex
	Created       []models.Event
	WatchListHits []models.WatchListEntry
	OfflineHubs   []models.Hub
	Closed        bool
}

func (m *MockNotifier) EventCreated(event models.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, event)
}

func (m *MockNotifier) WatchListHit(_ string, entry models.WatchListEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WatchListHits = append(m.WatchListHits, entry)
}

func (m *MockNotifier) HubOffline(hub models.Hub, _ models.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OfflineHubs = append(m.OfflineHubs, hub)
}

func (m *MockNotifier) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// Keys returns a snapshot of the cached keys.
func (m *MockCache) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.Data))
	for k := range m.Data {
		keys = append(keys, k)
	}
	return keys
}
