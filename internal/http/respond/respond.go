// Package respond maps domain errors to HTTP responses so handlers do not
// string-parse errors.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mfcarvalho/interco/internal/apperr"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err with a status derived from its domain kind.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	body := errorBody{Error: "internal error"}

	switch apperr.KindOf(err) {
	case apperr.KindInvalidArgument, apperr.KindValidationFailed:
		status = http.StatusUnprocessableEntity
		body.Error = err.Error()
	case apperr.KindInvalidState:
		status = http.StatusConflict
		body.Error = err.Error()
	case apperr.KindNotFound:
		status = http.StatusNotFound
		body.Error = err.Error()
	default:
		slog.Error("request failed", "error", err)
	}

	var e *apperr.Error
	if errors.As(err, &e) {
		body.Field = e.Field
	}

	JSON(w, status, body)
}
