package controllers

import (
	"net/http"

	"hubdash/internal/models"
	"hubdash/internal/providers"
	"hubdash/internal/services"
)

type CameraController struct {
	baseController
}

func NewCameraController(logger providers.Logger, store services.DataStoreInterface, cache providers.CacheProviderInterface) *CameraController {
	return &CameraController{baseController{logger: logger, store: store, cache: cache}}
}

func (cc *CameraController) List(w http.ResponseWriter, r *http.Request) {
	q, verr := parseListQuery(r, true)
	if verr != nil {
		cc.writeQueryError(w, verr)
		return
	}
	cc.serveFromCacheOrCompute(w, r, "Failed to fetch cameras", func() (any, error) {
		var cameras []models.Camera
		if q.HasHubID {
			cameras = cc.store.ListCamerasByHub(q.HubID)
		} else {
			cameras = cc.store.ListCameras()
		}
		return limitSlice(cameras, q.Limit), nil
	})
}

func (cc *CameraController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Camera not found")
		return
	}
	camera, found := cc.store.GetCamera(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "Camera not found")
		return
	}
	cc.writeJSON(w, r, http.StatusOK, camera, "Failed to fetch camera")
}

func (cc *CameraController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CameraInput
	if err := decodeJSON(w, r, &in); err != nil {
		cc.writeError(w, r, err, "Invalid camera data", "", "Failed to create camera")
		return
	}
	camera, err := cc.store.CreateCamera(in)
	if err != nil {
		cc.writeError(w, r, err, "Invalid camera data", "", "Failed to create camera")
		return
	}
	cc.writeJSON(w, r, http.StatusCreated, camera, "Failed to create camera")
}

func (cc *CameraController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Camera not found")
		return
	}
	patch, err := decodePatch(w, r)
	if err != nil {
		cc.writeError(w, r, err, "Invalid camera data", "Camera not found", "Failed to update camera")
		return
	}
	camera, err := cc.store.UpdateCamera(id, patch)
	if err != nil {
		cc.writeError(w, r, err, "Invalid camera data", "Camera not found", "Failed to update camera")
		return
	}
	cc.writeJSON(w, r, http.StatusOK, camera, "Failed to update camera")
}

func (cc *CameraController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok || !cc.store.DeleteCamera(id) {
		writeMessage(w, http.StatusNotFound, "Camera not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
