package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"microblog/app/repositories"

	"github.com/go-playground/validator/v10"
)

// sendJSON writes data as a JSON response with the given status
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes an error payload with the given status
func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// statusForError maps service errors to HTTP statuses: validation failures
// are 422, missing referenced entities 404, everything else 500.
func statusForError(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// sendServiceError translates a service error into a response. Internal
// failures get a generic message and a log line with the detail.
func sendServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		message = "internal server error"
	}
	sendError(w, status, message)
}
