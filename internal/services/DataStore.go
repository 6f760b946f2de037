package services

import (
	"time"

	"go.uber.org/atomic"
	"hubdash/internal/models"
	"hubdash/internal/structures"
)

const DefaultRecentEvents = 10

type DataStoreInterface interface {
	Initialize()
	Reset()
	Version() uint64
	Counts() map[string]int

	ListHubs() []models.Hub
	GetHub(id int) (models.Hub, bool)
	CreateHub(in models.HubInput) (models.Hub, error)
	UpdateHub(id int, patch models.Patch) (models.Hub, error)
	DeleteHub(id int) bool
	ArmHub(id int, armed bool) (models.Hub, bool)
	RecordHeartbeat(id int) (models.Hub, bool)
	MarkHubsStale(cutoff time.Time) []models.Hub

	ListCameras() []models.Camera
	ListCamerasByHub(hubID int) []models.Camera
	GetCamera(id int) (models.Camera, bool)
	CreateCamera(in models.CameraInput) (models.Camera, error)
	UpdateCamera(id int, patch models.Patch) (models.Camera, error)
	DeleteCamera(id int) bool

	ListEvents() []models.Event
	ListEventsByHub(hubID int) []models.Event
	RecentEvents(limit int) []models.Event
	GetEvent(id int) (models.Event, bool)
	CreateEvent(in models.EventInput) (models.Event, error)
	AcknowledgeEvent(id int) (models.Event, bool)
	DeleteEvent(id int) bool

	ListSpeakers() []models.Speaker
	ListSpeakersByHub(hubID int) []models.Speaker
	GetSpeaker(id int) (models.Speaker, bool)
	CreateSpeaker(in models.SpeakerInput) (models.Speaker, error)
	UpdateSpeaker(id int, patch models.Patch) (models.Speaker, error)
	DeleteSpeaker(id int) bool

	ListAITriggers() []models.AITrigger
	GetAITrigger(id int) (models.AITrigger, bool)
	CreateAITrigger(in models.AITriggerInput) (models.AITrigger, error)
	UpdateAITrigger(id int, patch models.Patch) (models.AITrigger, error)
	DeleteAITrigger(id int) bool

	ListWatchList() []models.WatchListEntry
	ListWatchListAll() []models.WatchListEntry
	GetWatchListEntry(id int) (models.WatchListEntry, bool)
	CreateWatchListEntry(in models.WatchListEntryInput) (models.WatchListEntry, error)
	UpdateWatchListEntry(id int, patch models.Patch) (models.WatchListEntry, error)
	DeleteWatchListEntry(id int) bool
	CheckLicensePlateWatch(plate string) (models.WatchListEntry, bool)
}

// DataStore keeps every collection in memory. Each collection carries its own
// lock; version is bumped after every successful mutation so response caches
// can key on it.
type DataStore struct {
	now     func() time.Time
	version *atomic.Uint64

	hubs      *models.Collection[models.Hub]
	cameras   *models.Collection[models.Camera]
	events    *models.Collection[models.Event]
	speakers  *models.Collection[models.Speaker]
	triggers  *models.Collection[models.AITrigger]
	watchList *models.Collection[models.WatchListEntry]
}

func newDataStore(clock func() time.Time) *DataStore {
	return &DataStore{
		now:       clock,
		version:   atomic.NewUint64(0),
		hubs:      models.NewCollection[models.Hub](),
		cameras:   models.NewCollection[models.Camera](),
		events:    models.NewCollection[models.Event](),
		speakers:  models.NewCollection[models.Speaker](),
		triggers:  models.NewCollection[models.AITrigger](),
		watchList: models.NewCollection[models.WatchListEntry](),
	}
}

// NewDataStore builds an empty store and seeds it with the fixture snapshot
// when store.seed is enabled.
func NewDataStore(conf *structures.Config) DataStoreInterface {
	ds := newDataStore(time.Now)
	if conf.Store.Seed {
		ds.Initialize()
	}
	return ds
}

// Initialize replaces the current contents with the fixture snapshot.
func (ds *DataStore) Initialize() {
	ds.Reset()
	seed(ds, ds.now())
	ds.touch()
}

func (ds *DataStore) Reset() {
	ds.hubs.Reset()
	ds.cameras.Reset()
	ds.events.Reset()
	ds.speakers.Reset()
	ds.triggers.Reset()
	ds.watchList.Reset()
	ds.touch()
}

func (ds *DataStore) Version() uint64 {
	return ds.version.Load()
}

func (ds *DataStore) Counts() map[string]int {
	return map[string]int{
		"hubs":       ds.hubs.Len(),
		"cameras":    ds.cameras.Len(),
		"events":     ds.events.Len(),
		"speakers":   ds.speakers.Len(),
		"aiTriggers": ds.triggers.Len(),
		"watchList":  ds.watchList.Len(),
	}
}

func (ds *DataStore) touch() {
	ds.version.Inc()
}

// mutated bumps the version when a mutation succeeded and passes its result
// through.
func mutated[T any](ds *DataStore, rec T, err error) (T, error) {
	if err == nil {
		ds.touch()
	}
	return rec, err
}

func removed(ds *DataStore, ok bool) bool {
	if ok {
		ds.touch()
	}
	return ok
}

// create validates a freshly built record and stores it under the next id.
// A rejected record does not consume an id.
func create[T any](ds *DataStore, coll *models.Collection[T], rec T, setID func(*T, int)) (T, error) {
	if err := models.ValidateStruct(rec); err != nil {
		var zero T
		return zero, err
	}
	stored := coll.Insert(func(id int) T {
		setID(&rec, id)
		return rec
	})
	ds.touch()
	return stored, nil
}

// update merges patch over the stored record, lets adjust stamp server-side
// fields and validates the result, all under the collection's write lock.
func update[T any](ds *DataStore, coll *models.Collection[T], id int, patch models.Patch, fields models.FieldSet, adjust func(*T)) (T, error) {
	rec, err := coll.Update(id, func(current T) (T, error) {
		next, err := models.ApplyPatch(current, patch, fields)
		if err != nil {
			return next, err
		}
		if adjust != nil {
			adjust(&next)
		}
		if err = models.ValidateStruct(next); err != nil {
			return next, err
		}
		return next, nil
	})
	return mutated(ds, rec, err)
}
