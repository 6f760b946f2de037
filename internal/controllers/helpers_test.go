package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"hubdash/internal/providers"
	"hubdash/internal/services"
	"hubdash/internal/structures"
	"hubdash/internal/testutil"
)

type apiFixture struct {
	handler  http.Handler
	store    services.DataStoreInterface
	logger   *testutil.MockLogger
	cache    *testutil.MockCache
	notifier *testutil.MockNotifier
	metrics  *testutil.MockMetrics
}

// newAPI mounts every resource controller on a chi router over a seeded store.
func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		store:    services.NewDataStore(&structures.Config{Store: structures.StoreConfig{Seed: true}}),
		logger:   &testutil.MockLogger{},
		cache:    testutil.NewMockCache(),
		notifier: &testutil.MockNotifier{},
		metrics:  &testutil.MockMetrics{},
	}

	hubs := NewHubController(f.logger, f.store, f.cache)
	cameras := NewCameraController(f.logger, f.store, f.cache)
	events := NewEventController(f.logger, f.store, f.cache, f.notifier, f.metrics)
	speakers := NewSpeakerController(f.logger, f.store, f.cache)
	triggers := NewAITriggerController(f.logger, f.store, f.cache)
	watchList := NewWatchListController(f.logger, f.store, f.notifier, f.metrics)

	rp := providers.NewRouterProvider()
	rp.Get("/api/hubs", http.HandlerFunc(hubs.List))
	rp.Post("/api/hubs", http.HandlerFunc(hubs.Create))
	rp.Get("/api/hubs/{id}", http.HandlerFunc(hubs.Get))
	rp.Patch("/api/hubs/{id}", http.HandlerFunc(hubs.Update))
	rp.Delete("/api/hubs/{id}", http.HandlerFunc(hubs.Delete))
	rp.Post("/api/hubs/{id}/arm", http.HandlerFunc(hubs.Arm))
	rp.Post("/api/hubs/{id}/disarm", http.HandlerFunc(hubs.Disarm))
	rp.Post("/api/hubs/{id}/heartbeat", http.HandlerFunc(hubs.Heartbeat))
	rp.Get("/api/cameras", http.HandlerFunc(cameras.List))
	rp.Post("/api/cameras", http.HandlerFunc(cameras.Create))
	rp.Get("/api/cameras/{id}", http.HandlerFunc(cameras.Get))
	rp.Patch("/api/cameras/{id}", http.HandlerFunc(cameras.Update))
	rp.Delete("/api/cameras/{id}", http.HandlerFunc(cameras.Delete))
	rp.Get("/api/events", http.HandlerFunc(events.List))
	rp.Post("/api/events", http.HandlerFunc(events.Create))
	rp.Get("/api/events/{id}", http.HandlerFunc(events.Get))
	rp.Patch("/api/events/{id}/acknowledge", http.HandlerFunc(events.Acknowledge))
	rp.Delete("/api/events/{id}", http.HandlerFunc(events.Delete))
	rp.Get("/api/speakers", http.HandlerFunc(speakers.List))
	rp.Post("/api/speakers", http.HandlerFunc(speakers.Create))
	rp.Get("/api/speakers/{id}", http.HandlerFunc(speakers.Get))
	rp.Patch("/api/speakers/{id}", http.HandlerFunc(speakers.Update))
	rp.Delete("/api/speakers/{id}", http.HandlerFunc(speakers.Delete))
	rp.Get("/api/ai-triggers", http.HandlerFunc(triggers.List))
	rp.Post("/api/ai-triggers", http.HandlerFunc(triggers.Create))
	rp.Get("/api/ai-triggers/{id}", http.HandlerFunc(triggers.Get))
	rp.Patch("/api/ai-triggers/{id}", http.HandlerFunc(triggers.Update))
	rp.Delete("/api/ai-triggers/{id}", http.HandlerFunc(triggers.Delete))
	rp.Get("/api/watchlist", http.HandlerFunc(watchList.List))
	rp.Post("/api/watchlist", http.HandlerFunc(watchList.Create))
	rp.Post("/api/watchlist/check", http.HandlerFunc(watchList.Check))
	rp.Get("/api/watchlist/{id}", http.HandlerFunc(watchList.Get))
	rp.Put("/api/watchlist/{id}", http.HandlerFunc(watchList.Update))
	rp.Patch("/api/watchlist/{id}", http.HandlerFunc(watchList.Update))
	rp.Delete("/api/watchlist/{id}", http.HandlerFunc(watchList.Delete))

	f.handler = rp.Handler()
	return f
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (e errorBody) fields() []string {
	out := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		out = append(out, fe.Field)
	}
	return out
}
