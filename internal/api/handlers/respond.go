package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/rs/zerolog/log"
)

// writeJSON writes v as a JSON response with the given status code. A nil v
// writes the header only.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// errorEnvelope is the error body shape shared by every endpoint.
type errorEnvelope struct {
	Errors struct {
		Message []string `json:"message"`
	} `json:"errors"`
}

// writeError maps a domain error onto an HTTP status and the error envelope.
func writeError(w http.ResponseWriter, err error) {
	var (
		status   int
		messages []string
	)

	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		messages = vErr.Messages
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		messages = []string{err.Error()}
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		messages = []string{"invalid credentials"}
	case errors.Is(err, apperr.ErrUnauthenticated):
		status = http.StatusUnauthorized
		messages = []string{"unauthorized"}
	default:
		log.Error().Err(err).Msg("Unhandled error")
		status = http.StatusInternalServerError
		messages = []string{"internal server error"}
	}

	var body errorEnvelope
	body.Errors.Message = messages
	writeJSON(w, status, body)
}
