// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps domain errors to status codes and keeps internal details out of
// response bodies.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"publications-api/internal/domain/entity"
	"publications-api/internal/observability/logging"
)

// Generic message returned for every 5xx response.
const internalErrorMessage = "internal server error"

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; only logging is possible.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// StatusFor maps an error onto the HTTP status of its taxonomy kind.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// DomainError writes err with the status its kind maps to.
// Classified errors carry their own message; anything else is logged with
// secrets masked and answered with a generic 500 body.
func DomainError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	code := StatusFor(err)
	if code < http.StatusInternalServerError {
		Error(w, code, err)
		return
	}

	logging.FromContext(r.Context()).Error("internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": internalErrorMessage})
}
