package services

import "hubdash/internal/models"

func (ds *DataStore) ListCameras() []models.Camera {
	return ds.cameras.Values()
}

func (ds *DataStore) ListCamerasByHub(hubID int) []models.Camera {
	return ds.cameras.Filter(func(c models.Camera) bool { return c.HubID == hubID })
}

func (ds *DataStore) GetCamera(id int) (models.Camera, bool) {
	return ds.cameras.Get(id)
}

func (ds *DataStore) CreateCamera(in models.CameraInput) (models.Camera, error) {
	return create(ds, ds.cameras, models.NewCamera(in), func(c *models.Camera, id int) { c.ID = id })
}

func (ds *DataStore) UpdateCamera(id int, patch models.Patch) (models.Camera, error) {
	return update(ds, ds.cameras, id, patch, models.CameraFields, nil)
}

func (ds *DataStore) DeleteCamera(id int) bool {
	return removed(ds, ds.cameras.Delete(id))
}
