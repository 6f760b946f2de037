package controllers

import (
	"net/http"

	"hubdash/internal/models"
	"hubdash/internal/providers"
	"hubdash/internal/services"
)

type HubController struct {
	baseController
}

func NewHubController(logger providers.Logger, store services.DataStoreInterface, cache providers.CacheProviderInterface) *HubController {
	return &HubController{baseController{logger: logger, store: store, cache: cache}}
}

func (hc *HubController) List(w http.ResponseWriter, r *http.Request) {
	q, verr := parseListQuery(r, false)
	if verr != nil {
		hc.writeQueryError(w, verr)
		return
	}
	hc.serveFromCacheOrCompute(w, r, "Failed to fetch hubs", func() (any, error) {
		return limitSlice(hc.store.ListHubs(), q.Limit), nil
	})
}

func (hc *HubController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	hub, found := hc.store.GetHub(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	hc.writeJSON(w, r, http.StatusOK, hub, "Failed to fetch hub")
}

func (hc *HubController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.HubInput
	if err := decodeJSON(w, r, &in); err != nil {
		hc.writeError(w, r, err, "Invalid hub data", "", "Failed to create hub")
		return
	}
	hub, err := hc.store.CreateHub(in)
	if err != nil {
		hc.writeError(w, r, err, "Invalid hub data", "", "Failed to create hub")
		return
	}
	hc.logger.Infof(providers.TypePost, "Hub %d (%s) created", hub.ID, hub.SerialNumber)
	hc.writeJSON(w, r, http.StatusCreated, hub, "Failed to create hub")
}

func (hc *HubController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	patch, err := decodePatch(w, r)
	if err != nil {
		hc.writeError(w, r, err, "Invalid hub data", "Hub not found", "Failed to update hub")
		return
	}
	hub, err := hc.store.UpdateHub(id, patch)
	if err != nil {
		hc.writeError(w, r, err, "Invalid hub data", "Hub not found", "Failed to update hub")
		return
	}
	hc.writeJSON(w, r, http.StatusOK, hub, "Failed to update hub")
}

func (hc *HubController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok || !hc.store.DeleteHub(id) {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	hc.logger.Infof(providers.TypePost, "Hub %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func (hc *HubController) Arm(w http.ResponseWriter, r *http.Request) {
	hc.setArmed(w, r, true)
}

func (hc *HubController) Disarm(w http.ResponseWriter, r *http.Request) {
	hc.setArmed(w, r, false)
}

func (hc *HubController) setArmed(w http.ResponseWriter, r *http.Request, armed bool) {
	failMsg := "Failed to disarm hub"
	if armed {
		failMsg = "Failed to arm hub"
	}
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	hub, found := hc.store.ArmHub(id, armed)
	if !found {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	hc.logger.Infof(providers.TypePost, "Hub %d armed=%t (status %s)", hub.ID, hub.SystemArmed, hub.Status)
	hc.writeJSON(w, r, http.StatusOK, hub, failMsg)
}

func (hc *HubController) Heartbeat(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	hub, found := hc.store.RecordHeartbeat(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "Hub not found")
		return
	}
	hc.writeJSON(w, r, http.StatusOK, hub, "Failed to record heartbeat")
}
