package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"hubdash/internal/models"
	"hubdash/internal/providers"
	"hubdash/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors"`
}

var errEmptyBody = models.NewValidationError("body", "request body is required")

// baseController carries what every resource controller needs.
type baseController struct {
	logger providers.Logger
	store  services.DataStoreInterface
	cache  providers.CacheProviderInterface
}

func (bc *baseController) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any, failMsg string) {
	gson, err := json.Marshal(payload)
	if err != nil {
		bc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: encode response: %s", r.Method, r.URL.Path, err)
		writeMessage(w, http.StatusInternalServerError, failMsg)
		return
	}
	writeRaw(w, status, gson)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	gson, _ := json.Marshal(messageResponse{Message: message})
	writeRaw(w, status, gson)
}

// writeError maps a store error onto the HTTP contract: field failures become
// 400, a missing record 404, anything else 500.
func (bc *baseController) writeError(w http.ResponseWriter, r *http.Request, err error, invalidMsg, notFoundMsg, failMsg string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		gson, _ := json.Marshal(validationResponse{Message: invalidMsg, Errors: verr.Fields})
		writeRaw(w, http.StatusBadRequest, gson)
	case errors.Is(err, models.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMsg)
	default:
		bc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
		writeMessage(w, http.StatusInternalServerError, failMsg)
	}
}

// serveFromCacheOrCompute answers list requests from the response cache.
// Keys embed the store version, so any mutation makes older entries
// unreachable.
func (bc *baseController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, failMsg string, compute func() (any, error)) {
	cacheKey := r.URL.Path + "?" + r.URL.RawQuery + "#" + strconv.FormatUint(bc.store.Version(), 10)
	if data, ok := bc.cache.Get(cacheKey); ok {
		writeRaw(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		bc.logger.Errorf(providers.TypeGet, "%s: %s", r.URL.Path, err)
		writeMessage(w, http.StatusInternalServerError, failMsg)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		bc.logger.Errorf(providers.TypeGet, "%s: encode response: %s", r.URL.Path, err)
		writeMessage(w, http.StatusInternalServerError, failMsg)
		return
	}

	bc.cache.Set(cacheKey, gson)
	writeRaw(w, http.StatusOK, gson)
}

// idParam reads the {id} path segment. Anything that is not a positive
// integer cannot name a record.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// decodeJSON reads a size-limited JSON body into dst. Decoding failures are
// reported as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.NewValidationError("body", "request body too large")
		}
		return models.NewValidationError("body", "unreadable request body")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyBody
	}
	return models.Decode(data, dst)
}

// decodePatch decodes a partial update. The body must be a JSON object.
func decodePatch(w http.ResponseWriter, r *http.Request) (models.Patch, error) {
	var patch models.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		return nil, err
	}
	if patch == nil {
		return nil, models.NewValidationError("body", "expected a JSON object")
	}
	return patch, nil
}

type listQuery struct {
	HubID    int
	HasHubID bool
	// Limit is zero when no limit was requested.
	Limit int
}

func parseListQuery(r *http.Request, allowHub bool) (listQuery, *models.ValidationError) {
	var q listQuery
	values := r.URL.Query()

	if raw := values.Get("hubId"); raw != "" && allowHub {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return q, models.NewValidationError("hubId", "must be an integer")
		}
		q.HubID, q.HasHubID = id, true
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return q, models.NewValidationError("limit", "must be a positive integer")
		}
		q.Limit = limit
	}
	return q, nil
}

func limitSlice[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func (bc *baseController) writeQueryError(w http.ResponseWriter, verr *models.ValidationError) {
	gson, _ := json.Marshal(validationResponse{Message: "Invalid query parameters", Errors: verr.Fields})
	writeRaw(w, http.StatusBadRequest, gson)
}
