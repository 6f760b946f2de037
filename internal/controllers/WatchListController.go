package controllers

import (
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"hubdash/internal/models"
	"hubdash/internal/providers"
	"hubdash/internal/services"
)

type checkRequest struct {
	LicensePlate string `json:"licensePlate"`
}

type checkResponse struct {
	Match *models.WatchListEntry `json:"match"`
}

// WatchListController serves the license-plate watch list. Its responses are
// never cached: activity depends on the clock as well as the store.
type WatchListController struct {
	baseController
	notifier providers.NotifierInterface
	metrics  providers.MetricsProviderInterface
}

func NewWatchListController(logger providers.Logger, store services.DataStoreInterface, notifier providers.NotifierInterface, metrics providers.MetricsProviderInterface) *WatchListController {
	return &WatchListController{
		baseController: baseController{logger: logger, store: store},
		notifier:       notifier,
		metrics:        metrics,
	}
}

func (wc *WatchListController) List(w http.ResponseWriter, r *http.Request) {
	q, verr := parseListQuery(r, false)
	if verr != nil {
		wc.writeQueryError(w, verr)
		return
	}
	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			wc.writeQueryError(w, models.NewValidationError("includeInactive", "must be a boolean"))
			return
		}
		includeInactive = v
	}

	var entries []models.WatchListEntry
	if includeInactive {
		entries = wc.store.ListWatchListAll()
	} else {
		entries = wc.store.ListWatchList()
	}
	wc.writeJSON(w, r, http.StatusOK, limitSlice(entries, q.Limit), "Failed to fetch watch list")
}

func (wc *WatchListController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Watch list entry not found")
		return
	}
	entry, found := wc.store.GetWatchListEntry(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "Watch list entry not found")
		return
	}
	wc.writeJSON(w, r, http.StatusOK, entry, "Failed to fetch watch list entry")
}

func (wc *WatchListController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.WatchListEntryInput
	if err := decodeJSON(w, r, &in); err != nil {
		wc.writeError(w, r, err, "Invalid data", "", "Failed to create watch list entry")
		return
	}
	entry, err := wc.store.CreateWatchListEntry(in)
	if err != nil {
		wc.writeError(w, r, err, "Invalid data", "", "Failed to create watch list entry")
		return
	}
	wc.logger.Infof(providers.TypePost, "Watch list entry %d added for %s by %s", entry.ID, entry.LicensePlate, entry.AddedBy)
	wc.writeJSON(w, r, http.StatusCreated, entry, "Failed to create watch list entry")
}

func (wc *WatchListController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Watch list entry not found")
		return
	}
	patch, err := decodePatch(w, r)
	if err != nil {
		wc.writeError(w, r, err, "Invalid data", "Watch list entry not found", "Failed to update watch list entry")
		return
	}
	entry, err := wc.store.UpdateWatchListEntry(id, patch)
	if err != nil {
		wc.writeError(w, r, err, "Invalid data", "Watch list entry not found", "Failed to update watch list entry")
		return
	}
	wc.writeJSON(w, r, http.StatusOK, entry, "Failed to update watch list entry")
}

func (wc *WatchListController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok || !wc.store.DeleteWatchListEntry(id) {
		writeMessage(w, http.StatusNotFound, "Watch list entry not found")
		return
	}
	wc.logger.Infof(providers.TypePost, "Watch list entry %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// Check answers whether a plate is currently watched. Matching ignores case
// and punctuation.
func (wc *WatchListController) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		wc.writeError(w, r, err, "License plate is required", "", "Failed to check license plate")
		return
	}
	if strings.TrimSpace(req.LicensePlate) == "" {
		gson, _ := json.Marshal(validationResponse{
			Message: "License plate is required",
			Errors:  []models.FieldError{{Field: "licensePlate", Message: "is required"}},
		})
		writeRaw(w, http.StatusBadRequest, gson)
		return
	}

	resp := checkResponse{}
	entry, hit := wc.store.CheckLicensePlateWatch(req.LicensePlate)
	wc.metrics.IncWatchListChecks(hit)
	if hit {
		resp.Match = &entry
		wc.logger.Warnf(providers.TypePost, "Plate %s matches watch list entry %d (%s, %s)",
			req.LicensePlate, entry.ID, entry.Reason, entry.Severity)
		wc.notifier.WatchListHit(req.LicensePlate, entry)
	}
	wc.writeJSON(w, r, http.StatusOK, resp, "Failed to check license plate")
}
