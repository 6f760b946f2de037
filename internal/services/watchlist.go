package services

import (
	"sort"
	"strings"

	"hubdash/internal/models"
)

// ListWatchList returns the entries active right now, most recently created
// first.
func (ds *DataStore) ListWatchList() []models.WatchListEntry {
	now := ds.now()
	entries := ds.watchList.Filter(func(e models.WatchListEntry) bool { return e.ActiveAt(now) })
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}

func (ds *DataStore) ListWatchListAll() []models.WatchListEntry {
	return ds.watchList.Values()
}

func (ds *DataStore) GetWatchListEntry(id int) (models.WatchListEntry, bool) {
	return ds.watchList.Get(id)
}

func (ds *DataStore) CreateWatchListEntry(in models.WatchListEntryInput) (models.WatchListEntry, error) {
	return create(ds, ds.watchList, models.NewWatchListEntry(in, ds.now()), func(e *models.WatchListEntry, id int) { e.ID = id })
}

func (ds *DataStore) UpdateWatchListEntry(id int, patch models.Patch) (models.WatchListEntry, error) {
	return update(ds, ds.watchList, id, patch, models.WatchListFields, func(e *models.WatchListEntry) {
		e.LicensePlate = strings.ToUpper(e.LicensePlate)
		e.UpdatedAt = ds.now()
	})
}

func (ds *DataStore) DeleteWatchListEntry(id int) bool {
	return removed(ds, ds.watchList.Delete(id))
}

// CheckLicensePlateWatch scans active entries in insertion order and returns
// the first whose normalized plate equals the normalized input.
func (ds *DataStore) CheckLicensePlateWatch(plate string) (models.WatchListEntry, bool) {
	normalized := models.NormalizePlate(plate)
	if normalized == "" {
		return models.WatchListEntry{}, false
	}
	now := ds.now()
	return ds.watchList.Find(func(e models.WatchListEntry) bool {
		return e.ActiveAt(now) && e.Matches(normalized)
	})
}
