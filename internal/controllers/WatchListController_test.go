package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hubdash/internal/models"
)

type checkBody struct {
	Match *models.WatchListEntry `json:"match"`
}

func TestWatchList_AddThenCheck(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPost, "/api/watchlist", `{"licensePlate":"def-5678","reason":"amber_alert","addedBy":"Dispatcher Lee","severity":"critical"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	entry := decodeBody[models.WatchListEntry](t, rr)
	assert.Equal(t, 3, entry.ID)
	assert.Equal(t, "DEF-5678", entry.LicensePlate)
	assert.True(t, entry.IsActive)

	rr = f.do(http.MethodPost, "/api/watchlist/check", `{"licensePlate":"def 5678"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	check := decodeBody[checkBody](t, rr)
	require.NotNil(t, check.Match)
	assert.Equal(t, 3, check.Match.ID)
	assert.Equal(t, "amber_alert", check.Match.Reason)

	require.Len(t, f.notifier.WatchListHits, 1)
	assert.Equal(t, 1, f.metrics.WatchListHits)
}

func TestWatchList_CheckNoMatch(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPost, "/api/watchlist/check", `{"licensePlate":"NOPE-000"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"match":null}`, rr.Body.String())
	assert.Empty(t, f.notifier.WatchListHits)
	assert.Equal(t, 1, f.metrics.WatchListMisses)
}

func TestWatchList_CheckRequiresPlate(t *testing.T) {
	f := newAPI(t)

	for _, body := range []string{`{"licensePlate":"   "}`, `{}`, ""} {
		rr := f.do(http.MethodPost, "/api/watchlist/check", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "License plate is required", decodeBody[errorBody](t, rr).Message, body)
	}
	assert.Zero(t, f.metrics.WatchListHits+f.metrics.WatchListMisses)
}

func TestWatchList_DeactivatedEntryStopsMatching(t *testing.T) {
	f := newAPI(t)

	check := decodeBody[checkBody](t, f.do(http.MethodPost, "/api/watchlist/check", `{"licensePlate":"xyz9876"}`))
	require.NotNil(t, check.Match)
	assert.Equal(t, 2, check.Match.ID)

	rr := f.do(http.MethodPut, "/api/watchlist/2", `{"isActive":false}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.False(t, decodeBody[models.WatchListEntry](t, rr).IsActive)

	check = decodeBody[checkBody](t, f.do(http.MethodPost, "/api/watchlist/check", `{"licensePlate":"xyz9876"}`))
	assert.Nil(t, check.Match)

	active := decodeBody[[]models.WatchListEntry](t, f.do(http.MethodGet, "/api/watchlist", ""))
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].ID)

	all := decodeBody[[]models.WatchListEntry](t, f.do(http.MethodGet, "/api/watchlist?includeInactive=true", ""))
	assert.Len(t, all, 2)
}

func TestWatchList_ExpiredEntryStopsMatching(t *testing.T) {
	f := newAPI(t)

	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	rr := f.do(http.MethodPatch, "/api/watchlist/1", `{"expiresAt":"`+past+`"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	check := decodeBody[checkBody](t, f.do(http.MethodPost, "/api/watchlist/check", `{"licensePlate":"ABC-1234"}`))
	assert.Nil(t, check.Match)

	rr = f.do(http.MethodPatch, "/api/watchlist/1", `{"expiresAt":null}`)
	require.Equal(t, http.StatusOK, rr.Code)
	check = decodeBody[checkBody](t, f.do(http.MethodPost, "/api/watchlist/check", `{"licensePlate":"ABC-1234"}`))
	assert.NotNil(t, check.Match)
}

func TestWatchList_ListOrderAndValidation(t *testing.T) {
	f := newAPI(t)

	entries := decodeBody[[]models.WatchListEntry](t, f.do(http.MethodGet, "/api/watchlist", ""))
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 2, entries[1].ID)

	limited := decodeBody[[]models.WatchListEntry](t, f.do(http.MethodGet, "/api/watchlist?limit=1", ""))
	assert.Len(t, limited, 1)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/watchlist?includeInactive=maybe", "").Code)

	rr := f.do(http.MethodPost, "/api/watchlist", `{"licensePlate":"JKL-1111"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody[errorBody](t, rr)
	assert.Equal(t, "Invalid data", body.Message)
	assert.Contains(t, body.fields(), "reason")
	assert.Contains(t, body.fields(), "addedBy")
}

func TestWatchList_PlateWithoutLettersOrDigitsIsRejected(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPost, "/api/watchlist", `{"licensePlate":"---","reason":"stolen","addedBy":"Officer"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"licensePlate"}, decodeBody[errorBody](t, rr).fields())

	rr = f.do(http.MethodPatch, "/api/watchlist/1", `{"licensePlate":"   "}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody[errorBody](t, rr).fields(), "licensePlate")

	all := decodeBody[[]models.WatchListEntry](t, f.do(http.MethodGet, "/api/watchlist?includeInactive=true", ""))
	for _, e := range all {
		assert.NotEmpty(t, models.NormalizePlate(e.LicensePlate), e.LicensePlate)
	}
}

func TestWatchList_UpdateUppercasesPlate(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPatch, "/api/watchlist/2", `{"licensePlate":"xyz-0000"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	entry := decodeBody[models.WatchListEntry](t, rr)
	assert.Equal(t, "XYZ-0000", entry.LicensePlate)

	got := decodeBody[models.WatchListEntry](t, f.do(http.MethodGet, "/api/watchlist/2", ""))
	assert.Equal(t, "XYZ-0000", got.LicensePlate)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	rr = f.do(http.MethodPatch, "/api/watchlist/77", `{"reason":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Watch list entry not found", decodeBody[errorBody](t, rr).Message)
}

func TestWatchList_Delete(t *testing.T) {
	f := newAPI(t)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/watchlist/1", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/watchlist/1", "").Code)

	check := decodeBody[checkBody](t, f.do(http.MethodPost, "/api/watchlist/check", `{"licensePlate":"ABC-1234"}`))
	assert.Nil(t, check.Match)
}
