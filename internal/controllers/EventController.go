package controllers

import (
	"net/http"

	"hubdash/internal/models"
	"hubdash/internal/providers"
	"hubdash/internal/services"
)

type EventController struct {
	baseController
	notifier providers.NotifierInterface
	metrics  providers.MetricsProviderInterface
}

func NewEventController(logger providers.Logger, store services.DataStoreInterface, cache providers.CacheProviderInterface, notifier providers.NotifierInterface, metrics providers.MetricsProviderInterface) *EventController {
	return &EventController{
		baseController: baseController{logger: logger, store: store, cache: cache},
		notifier:       notifier,
		metrics:        metrics,
	}
}

// List filters by hubId when given; otherwise a limit selects the most
// recent events.
func (ec *EventController) List(w http.ResponseWriter, r *http.Request) {
	q, verr := parseListQuery(r, true)
	if verr != nil {
		ec.writeQueryError(w, verr)
		return
	}
	ec.serveFromCacheOrCompute(w, r, "Failed to fetch events", func() (any, error) {
		switch {
		case q.HasHubID:
			return limitSlice(ec.store.ListEventsByHub(q.HubID), q.Limit), nil
		case q.Limit > 0:
			return ec.store.RecentEvents(q.Limit), nil
		default:
			return ec.store.ListEvents(), nil
		}
	})
}

func (ec *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	event, found := ec.store.GetEvent(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	ec.writeJSON(w, r, http.StatusOK, event, "Failed to fetch event")
}

// Create records the event and publishes it. An event carrying a plate that
// is on the watch list also publishes a watch-list hit.
func (ec *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.EventInput
	if err := decodeJSON(w, r, &in); err != nil {
		ec.writeError(w, r, err, "Invalid event data", "", "Failed to create event")
		return
	}
	event, err := ec.store.CreateEvent(in)
	if err != nil {
		ec.writeError(w, r, err, "Invalid event data", "", "Failed to create event")
		return
	}

	ec.notifier.EventCreated(event)
	if event.LicensePlate != nil && *event.LicensePlate != "" {
		entry, hit := ec.store.CheckLicensePlateWatch(*event.LicensePlate)
		ec.metrics.IncWatchListChecks(hit)
		if hit {
			ec.logger.Warnf(providers.TypePost, "Event %d plate %s matches watch list entry %d (%s)",
				event.ID, *event.LicensePlate, entry.ID, entry.Reason)
			ec.notifier.WatchListHit(*event.LicensePlate, entry)
		}
	}

	ec.writeJSON(w, r, http.StatusCreated, event, "Failed to create event")
}

func (ec *EventController) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	event, found := ec.store.AcknowledgeEvent(id)
	if !found {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	ec.writeJSON(w, r, http.StatusOK, event, "Failed to acknowledge event")
}

func (ec *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok || !ec.store.DeleteEvent(id) {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
