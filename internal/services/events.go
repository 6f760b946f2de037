package services

import (
	"sort"

	"hubdash/internal/models"
)

// newestFirst orders events by timestamp descending; equal timestamps fall
// back to the higher id first.
func newestFirst(events []models.Event) []models.Event {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].ID > events[j].ID
		}
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

func (ds *DataStore) ListEvents() []models.Event {
	return newestFirst(ds.events.Values())
}

func (ds *DataStore) ListEventsByHub(hubID int) []models.Event {
	return newestFirst(ds.events.Filter(func(e models.Event) bool { return e.HubID == hubID }))
}

// RecentEvents returns at most limit events, newest first. A non-positive
// limit falls back to DefaultRecentEvents.
func (ds *DataStore) RecentEvents(limit int) []models.Event {
	if limit <= 0 {
		limit = DefaultRecentEvents
	}
	events := ds.ListEvents()
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

func (ds *DataStore) GetEvent(id int) (models.Event, bool) {
	return ds.events.Get(id)
}

func (ds *DataStore) CreateEvent(in models.EventInput) (models.Event, error) {
	return create(ds, ds.events, models.NewEvent(in, ds.now()), func(e *models.Event, id int) { e.ID = id })
}

// AcknowledgeEvent is idempotent; acknowledging twice returns the same record.
func (ds *DataStore) AcknowledgeEvent(id int) (models.Event, bool) {
	ev, err := ds.events.Update(id, func(current models.Event) (models.Event, error) {
		current.Acknowledged = true
		return current, nil
	})
	if err != nil {
		return ev, false
	}
	ds.touch()
	return ev, true
}

func (ds *DataStore) DeleteEvent(id int) bool {
	return removed(ds, ds.events.Delete(id))
}
