package services

import "hubdash/internal/models"

func (ds *DataStore) ListAITriggers() []models.AITrigger {
	return ds.triggers.Values()
}

func (ds *DataStore) GetAITrigger(id int) (models.AITrigger, bool) {
	return ds.triggers.Get(id)
}

func (ds *DataStore) CreateAITrigger(in models.AITriggerInput) (models.AITrigger, error) {
	return create(ds, ds.triggers, models.NewAITrigger(in, ds.now()), func(t *models.AITrigger, id int) { t.ID = id })
}

func (ds *DataStore) UpdateAITrigger(id int, patch models.Patch) (models.AITrigger, error) {
	return update(ds, ds.triggers, id, patch, models.AITriggerFields, func(t *models.AITrigger) {
		t.UpdatedAt = ds.now()
	})
}

func (ds *DataStore) DeleteAITrigger(id int) bool {
	return removed(ds, ds.triggers.Delete(id))
}
