package services

import (
	"time"

	"hubdash/internal/models"
)

func (ds *DataStore) ListHubs() []models.Hub {
	return ds.hubs.Values()
}

func (ds *DataStore) GetHub(id int) (models.Hub, bool) {
	return ds.hubs.Get(id)
}

func (ds *DataStore) CreateHub(in models.HubInput) (models.Hub, error) {
	return create(ds, ds.hubs, models.NewHub(in, ds.now()), func(h *models.Hub, id int) { h.ID = id })
}

func (ds *DataStore) UpdateHub(id int, patch models.Patch) (models.Hub, error) {
	return update(ds, ds.hubs, id, patch, models.HubFields, nil)
}

func (ds *DataStore) DeleteHub(id int) bool {
	return removed(ds, ds.hubs.Delete(id))
}

// ArmHub sets the armed flag regardless of the hub's connection status and
// refreshes its heartbeat.
func (ds *DataStore) ArmHub(id int, armed bool) (models.Hub, bool) {
	return ds.touchHub(id, func(h *models.Hub) {
		h.SystemArmed = armed
	})
}

// RecordHeartbeat marks the hub online and refreshes its heartbeat.
func (ds *DataStore) RecordHeartbeat(id int) (models.Hub, bool) {
	return ds.touchHub(id, func(h *models.Hub) {
		h.Status = models.StatusOnline
	})
}

func (ds *DataStore) touchHub(id int, fn func(*models.Hub)) (models.Hub, bool) {
	hub, err := ds.hubs.Update(id, func(current models.Hub) (models.Hub, error) {
		fn(&current)
		current.LastHeartbeat = ds.now()
		return current, nil
	})
	if err != nil {
		return hub, false
	}
	ds.touch()
	return hub, true
}

// MarkHubsStale switches online hubs whose last heartbeat is before cutoff to
// offline and returns the hubs that changed.
func (ds *DataStore) MarkHubsStale(cutoff time.Time) []models.Hub {
	stale := ds.hubs.UpdateWhere(
		func(h models.Hub) bool {
			return h.Status == models.StatusOnline && h.LastHeartbeat.Before(cutoff)
		},
		func(h models.Hub) models.Hub {
			h.Status = models.StatusOffline
			return h
		},
	)
	if len(stale) > 0 {
		ds.touch()
	}
	return stale
}
