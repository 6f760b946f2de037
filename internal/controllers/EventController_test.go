package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hubdash/internal/models"
)

func eventIDs(events []models.Event) []int {
	ids := make([]int, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestEvents_ListNewestFirst(t *testing.T) {
	f := newAPI(t)

	events := decodeBody[[]models.Event](t, f.do(http.MethodGet, "/api/events", ""))
	assert.Equal(t, []int{1, 4, 2, 5, 6, 3, 7}, eventIDs(events))

	byHub := decodeBody[[]models.Event](t, f.do(http.MethodGet, "/api/events?hubId=1", ""))
	assert.Equal(t, []int{1, 4, 2, 6}, eventIDs(byHub))

	byHubLimited := decodeBody[[]models.Event](t, f.do(http.MethodGet, "/api/events?hubId=1&limit=2", ""))
	assert.Equal(t, []int{1, 4}, eventIDs(byHubLimited))

	recent := decodeBody[[]models.Event](t, f.do(http.MethodGet, "/api/events?limit=3", ""))
	assert.Equal(t, []int{1, 4, 2}, eventIDs(recent))

	rr := f.do(http.MethodGet, "/api/events?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEvents_CreatePublishes(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPost, "/api/events", `{"hubId":2,"cameraId":4,"type":"person_detection","severity":"low","title":"Person in garage"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	event := decodeBody[models.Event](t, rr)
	assert.Equal(t, 8, event.ID)
	assert.False(t, event.Acknowledged)
	assert.False(t, event.Timestamp.IsZero())

	require.Len(t, f.notifier.Created, 1)
	assert.Equal(t, 8, f.notifier.Created[0].ID)
	assert.Empty(t, f.notifier.WatchListHits)
	assert.Zero(t, f.metrics.WatchListHits+f.metrics.WatchListMisses)

	events := decodeBody[[]models.Event](t, f.do(http.MethodGet, "/api/events?limit=1", ""))
	assert.Equal(t, []int{8}, eventIDs(events))
}

func TestEvents_CreateWithWatchedPlate(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPost, "/api/events", `{"hubId":1,"cameraId":1,"type":"license_plate","severity":"medium","title":"License Plate Detected","licensePlate":"abc 1234","licensePlateConfidence":0.9}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	require.Len(t, f.notifier.WatchListHits, 1)
	assert.Equal(t, 1, f.notifier.WatchListHits[0].ID)
	assert.Equal(t, 1, f.metrics.WatchListHits)

	rr = f.do(http.MethodPost, "/api/events", `{"hubId":1,"type":"license_plate","severity":"low","title":"License Plate Detected","licensePlate":"QQQ-0000"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Len(t, f.notifier.WatchListHits, 1)
	assert.Equal(t, 1, f.metrics.WatchListMisses)
}

func TestEvents_CreateRejectsInvalid(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPost, "/api/events", `{"hubId":1,"type":"system","severity":"urgent"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody[errorBody](t, rr)
	assert.Equal(t, "Invalid event data", body.Message)
	assert.Contains(t, body.fields(), "severity")
	assert.Contains(t, body.fields(), "title")
	assert.Empty(t, f.notifier.Created)

	rr = f.do(http.MethodPost, "/api/events", `{"hubId":"one","type":"system","severity":"low","title":"t"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEvents_AcknowledgeIsIdempotent(t *testing.T) {
	f := newAPI(t)

	rr := f.do(http.MethodPatch, "/api/events/1/acknowledge", "")
	require.Equal(t, http.StatusOK, rr.Code)
	first := decodeBody[models.Event](t, rr)
	assert.True(t, first.Acknowledged)

	rr = f.do(http.MethodPatch, "/api/events/1/acknowledge", "")
	require.Equal(t, http.StatusOK, rr.Code)
	second := decodeBody[models.Event](t, rr)
	assert.True(t, second.Acknowledged)
	assert.Equal(t, first.Timestamp, second.Timestamp)

	rr = f.do(http.MethodPatch, "/api/events/99/acknowledge", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Event not found", decodeBody[errorBody](t, rr).Message)
}

func TestEvents_GetAndDelete(t *testing.T) {
	f := newAPI(t)

	event := decodeBody[models.Event](t, f.do(http.MethodGet, "/api/events/4", ""))
	require.NotNil(t, event.LicensePlate)
	assert.Equal(t, "ABC-1234", *event.LicensePlate)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/events/4", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/events/4", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/events/4", "").Code)

	events := decodeBody[[]models.Event](t, f.do(http.MethodGet, "/api/events?hubId=1", ""))
	assert.Equal(t, []int{1, 2, 6}, eventIDs(events))
}
