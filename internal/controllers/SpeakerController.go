package controllers

import (
	"net/http"

	"hubdash/internal/models"
	"hubdash/internal/providers"
	"hubdash/internal/services"
)

type SpeakerController struct {
	baseController
}

func NewSpeakerController(logger providers.Logger, store services.DataStoreInterface, cache providers.CacheProviderInterface) *SpeakerController {
	return &SpeakerController{baseController{logger: logger, store: store, cache: cache}}
}

func (sc *SpeakerController) List(w http.ResponseWriter, r *http.Request) {
	q, verr := parseListQuery(r, true)
	if verr != nil {
		sc.writeQueryError(w, verr)
		return
	}
	sc.serveFromCacheOrCompute(w, r, "Failed to fetch speakers", func() (any, error) {
		var speakers []models.Speaker
		if q.HasHubID {
			speakers = sc.store.ListSpeakersByHub(q.HubID)
		} else {
			speakers = sc.store.ListSpeakers()
		}
		return limitSlice(speakers, q.Limit), nil
	})
}

func (sc *SpeakerController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Speaker not found")
		return
	}
	speaker, found := sc.store.GetSpeaker(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "Speaker not found")
		return
	}
	sc.writeJSON(w, r, http.StatusOK, speaker, "Failed to fetch speaker")
}

func (sc *SpeakerController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.SpeakerInput
	if err := decodeJSON(w, r, &in); err != nil {
		sc.writeError(w, r, err, "Invalid speaker data", "", "Failed to create speaker")
		return
	}
	speaker, err := sc.store.CreateSpeaker(in)
	if err != nil {
		sc.writeError(w, r, err, "Invalid speaker data", "", "Failed to create speaker")
		return
	}
	sc.writeJSON(w, r, http.StatusCreated, speaker, "Failed to create speaker")
}

func (sc *SpeakerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Speaker not found")
		return
	}
	patch, err := decodePatch(w, r)
	if err != nil {
		sc.writeError(w, r, err, "Invalid speaker data", "Speaker not found", "Failed to update speaker")
		return
	}
	speaker, err := sc.store.UpdateSpeaker(id, patch)
	if err != nil {
		sc.writeError(w, r, err, "Invalid speaker data", "Speaker not found", "Failed to update speaker")
		return
	}
	sc.writeJSON(w, r, http.StatusOK, speaker, "Failed to update speaker")
}

func (sc *SpeakerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok || !sc.store.DeleteSpeaker(id) {
		writeMessage(w, http.StatusNotFound, "Speaker not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
