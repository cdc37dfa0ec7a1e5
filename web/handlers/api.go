package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/scrypster/heritage/internal/engine"
	"github.com/scrypster/heritage/internal/ingest"
)

// Source supplies the currently served dataset and its query engine.
// heritage-web swaps datasets on reload, so handlers resolve the pair
// per request instead of holding onto one.
type Source interface {
	Engine() *engine.Engine
	Dataset() *ingest.Dataset
	DatasetPath() string
	LoadedAt() time.Time
}

// APIHandlers contains the REST handlers for the query API.
type APIHandlers struct {
	source Source
}

// NewAPIHandlers creates a new APIHandlers instance.
func NewAPIHandlers(source Source) *APIHandlers {
	return &APIHandlers{source: source}
}

// HandleHealth handles GET /api/health.
func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleStats handles GET /api/stats - dataset size and provenance.
func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	ds := h.source.Dataset()
	writeJSON(w, http.StatusOK, StatsResponse{
		Persons:  ds.Len(),
		Edges:    ds.Graph().EdgeCount(),
		Dataset:  h.source.DatasetPath(),
		LoadedAt: h.source.LoadedAt(),
	})
}

// HandlePerson handles GET /api/person?id=N - the canonical merged
// record for one person.
func (h *APIHandlers) HandlePerson(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
		return
	}

	ent, ok := h.source.Dataset().Lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_PERSON",
			(&engine.UnknownPersonError{ID: id}).Error())
		return
	}

	writeJSON(w, http.StatusOK, PersonResponse{Person: ent.Record})
}

// HandlePath handles GET /api/path?start=A&finish=B - the shortest
// relationship chain between two persons.
func (h *APIHandlers) HandlePath(w http.ResponseWriter, r *http.Request) {
	start, err := parseID(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "start must be an integer")
		return
	}
	finish, err := parseID(r.URL.Query().Get("finish"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "finish must be an integer")
		return
	}

	body, status := resolvePath(r.Context(), h.source, start, finish)
	writeJSON(w, status, body)
}

// resolvePath executes one query and maps the outcome onto a response
// body and HTTP status. Shared by the REST handler and the WebSocket
// query loop.
func resolvePath(ctx context.Context, src Source, start, finish int64) (interface{}, int) {
	steps, err := src.Engine().Resolve(ctx, start, finish)
	switch {
	case err == nil:
		return PathResponse{
			QueryID:  uuid.NewString(),
			Start:    start,
			Finish:   finish,
			Found:    true,
			Steps:    steps,
			Rendered: engine.FormatChain(steps),
			Distance: len(steps) - 1,
		}, http.StatusOK

	case errors.Is(err, engine.ErrNoRelationship):
		return PathResponse{
			QueryID: uuid.NewString(),
			Start:   start,
			Finish:  finish,
			Found:   false,
			Message: err.Error(),
		}, http.StatusOK

	default:
		var unknown *engine.UnknownPersonError
		if errors.As(err, &unknown) {
			return ErrorResponse{Error: err.Error(), Code: "UNKNOWN_PERSON"}, http.StatusNotFound
		}
		return ErrorResponse{Error: err.Error(), Code: "INTERNAL"}, http.StatusInternalServerError
	}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
