// Package handlers provides the HTTP handlers and middleware for the
// heritage query API.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/scrypster/heritage/internal/engine"
	"github.com/scrypster/heritage/pkg/types"
)

// ErrorResponse is the standard error response format for the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// PathResponse is the response format for GET /api/path and for
// WebSocket query replies. When no chain connects the two persons,
// Found is false and Message carries the no-relationship text; that
// is a successful query, not an error.
type PathResponse struct {
	QueryID  string            `json:"query_id"`
	Start    int64             `json:"start"`
	Finish   int64             `json:"finish"`
	Found    bool              `json:"found"`
	Steps    []engine.PathStep `json:"steps,omitempty"`
	Rendered string            `json:"rendered,omitempty"`
	Distance int               `json:"distance"`
	Message  string            `json:"message,omitempty"`
}

// PersonResponse is the response format for GET /api/person.
type PersonResponse struct {
	Person *types.PersonRecord `json:"person"`
}

// StatsResponse is the response format for GET /api/stats.
type StatsResponse struct {
	Persons  int       `json:"persons"`
	Edges    int       `json:"edges"`
	Dataset  string    `json:"dataset"`
	LoadedAt time.Time `json:"loaded_at"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: encode response: %v", err)
	}
}

// writeError writes a standard error response.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}
