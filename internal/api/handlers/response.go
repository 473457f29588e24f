package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/edgeworth/internal/domain"
	"github.com/Harshitk-cp/edgeworth/internal/service"
)

// writeJSON encodes v before writing the status, so an unencodable value
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeModelError maps model and validation errors to 400, anything else to 500.
func writeModelError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidParams),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidSweep),
		errors.Is(err, service.ErrGridMismatch),
		errors.Is(err, service.ErrNoCandidates),
		errors.Is(err, service.ErrNoFeasibleCandidate):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
