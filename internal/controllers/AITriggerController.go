package controllers

import (
	"net/http"

	"hubdash/internal/models"
	"hubdash/internal/providers"
	"hubdash/internal/services"
)

type AITriggerController struct {
	baseController
}

func NewAITriggerController(logger providers.Logger, store services.DataStoreInterface, cache providers.CacheProviderInterface) *AITriggerController {
	return &AITriggerController{baseController{logger: logger, store: store, cache: cache}}
}

func (tc *AITriggerController) List(w http.ResponseWriter, r *http.Request) {
	q, verr := parseListQuery(r, false)
	if verr != nil {
		tc.writeQueryError(w, verr)
		return
	}
	tc.serveFromCacheOrCompute(w, r, "Failed to fetch AI triggers", func() (any, error) {
		return limitSlice(tc.store.ListAITriggers(), q.Limit), nil
	})
}

func (tc *AITriggerController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "AI trigger not found")
		return
	}
	trigger, found := tc.store.GetAITrigger(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "AI trigger not found")
		return
	}
	tc.writeJSON(w, r, http.StatusOK, trigger, "Failed to fetch AI trigger")
}

func (tc *AITriggerController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.AITriggerInput
	if err := decodeJSON(w, r, &in); err != nil {
		tc.writeError(w, r, err, "Invalid trigger data", "", "Failed to create AI trigger")
		return
	}
	trigger, err := tc.store.CreateAITrigger(in)
	if err != nil {
		tc.writeError(w, r, err, "Invalid trigger data", "", "Failed to create AI trigger")
		return
	}
	tc.logger.Infof(providers.TypePost, "AI trigger %d (%s) created", trigger.ID, trigger.Name)
	tc.writeJSON(w, r, http.StatusCreated, trigger, "Failed to create AI trigger")
}

func (tc *AITriggerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "AI trigger not found")
		return
	}
	patch, err := decodePatch(w, r)
	if err != nil {
		tc.writeError(w, r, err, "Invalid trigger data", "AI trigger not found", "Failed to update AI trigger")
		return
	}
	trigger, err := tc.store.UpdateAITrigger(id, patch)
	if err != nil {
		tc.writeError(w, r, err, "Invalid trigger data", "AI trigger not found", "Failed to update AI trigger")
		return
	}
	tc.writeJSON(w, r, http.StatusOK, trigger, "Failed to update AI trigger")
}

func (tc *AITriggerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok || !tc.store.DeleteAITrigger(id) {
		writeMessage(w, http.StatusNotFound, "AI trigger not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
