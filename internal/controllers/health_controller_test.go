package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hubdash/internal/services"
	"hubdash/internal/structures"
)

func TestHealth_ReturnsOK(t *testing.T) {
	store := services.NewDataStore(&structures.Config{Store: structures.StoreConfig{Seed: true}})
	hc := NewHealthController(store)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp struct {
		Status        string         `json:"status"`
		Uptime        string         `json:"uptime"`
		UptimeSeconds *float64       `json:"uptime_seconds"`
		Collections   map[string]int `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Uptime)
	assert.NotNil(t, resp.UptimeSeconds)
	assert.Equal(t, 3, resp.Collections["hubs"])
	assert.Equal(t, 6, resp.Collections["cameras"])
	assert.Equal(t, 7, resp.Collections["events"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(services.NewDataStore(&structures.Config{}))

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealth_EmptyStore(t *testing.T) {
	hc := NewHealthController(services.NewDataStore(&structures.Config{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	collections, ok := resp["collections"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), collections["hubs"])
	assert.Equal(t, float64(0), resp["store_version"])
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
