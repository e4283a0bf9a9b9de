package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"insighthub/internal/apperror"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeAppError maps the service error taxonomy onto HTTP status codes.
// Unrecognized errors become a generic 500 so internals never leak.
func (h *Handlers) writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	message := "internal server error"
	field := ""
	if errors.As(err, &appErr) {
		message = appErr.Message
		field = appErr.Field
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperror.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		h.Logger.Error("internal error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Field: field})
}
