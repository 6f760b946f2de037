package services

import "hubdash/internal/models"

func (ds *DataStore) ListSpeakers() []models.Speaker {
	return ds.speakers.Values()
}

func (ds *DataStore) ListSpeakersByHub(hubID int) []models.Speaker {
	return ds.speakers.Filter(func(s models.Speaker) bool { return s.HubID == hubID })
}

func (ds *DataStore) GetSpeaker(id int) (models.Speaker, bool) {
	return ds.speakers.Get(id)
}

func (ds *DataStore) CreateSpeaker(in models.SpeakerInput) (models.Speaker, error) {
	return create(ds, ds.speakers, models.NewSpeaker(in), func(s *models.Speaker, id int) { s.ID = id })
}

func (ds *DataStore) UpdateSpeaker(id int, patch models.Patch) (models.Speaker, error) {
	return update(ds, ds.speakers, id, patch, models.SpeakerFields, nil)
}

func (ds *DataStore) DeleteSpeaker(id int) bool {
	return removed(ds, ds.speakers.Delete(id))
}
