package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rezkam/todos/internal/domain"
)

// Client-facing messages. They are part of the HTTP contract.
const (
	MsgTitleRequired    = "Title is required"
	MsgTitleTooLong     = "Title must be 255 characters or less"
	MsgNoFieldsToUpdate = "No fields to update"
	MsgInvalidBody      = "invalid JSON body"
	MsgTodoNotFound     = "Todo not found"
	MsgRouteNotFound    = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgPayloadTooLarge  = "request body exceeds size limit"
	MsgEncodingFailed   = "failed to encode response"
)

// ErrorResponse is the error body for every non-2xx response except /health.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends {"error": message} with the given status code.
func Error(w http.ResponseWriter, message string, statusCode int) {
	body, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		// a struct with one string field always marshals
		body = []byte(`{"error":"internal error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	slog.DebugContext(r.Context(), "Rejected request", "path", r.URL.Path, "reason", message)
	Error(w, message, http.StatusBadRequest)
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, message, http.StatusNotFound)
}

// InternalError sends a 500 Internal Server Error.
// The error is logged once with the request context and its text becomes the body.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Internal server error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err)

	Error(w, err.Error(), http.StatusInternalServerError)
}

// FromDomainError maps domain errors to HTTP responses.
// It is the only place that decides status codes for service errors.
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Validation errors (400)
	case errors.Is(err, domain.ErrTitleRequired):
		BadRequest(w, r, MsgTitleRequired)
	case errors.Is(err, domain.ErrTitleTooLong):
		BadRequest(w, r, MsgTitleTooLong)
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		BadRequest(w, r, MsgNoFieldsToUpdate)
	case errors.Is(err, domain.ErrInvalidBody):
		BadRequest(w, r, MsgInvalidBody)

	// Not found errors (404)
	case errors.Is(err, domain.ErrTodoNotFound):
		NotFound(w, MsgTodoNotFound)

	// Persistence and unknown errors (500)
	default:
		InternalError(w, r, err)
	}
}
