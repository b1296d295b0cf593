package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON encodes data before touching the response, so an encoding failure
// still produces a 500 with a JSON error body.
func JSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", "error", err)
		Error(w, MsgEncodingFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		slog.DebugContext(r.Context(), "Failed to write response", "error", err)
	}
}

// OK sends a 200 OK response with JSON data.
func OK(w http.ResponseWriter, r *http.Request, data any) {
	JSON(w, r, http.StatusOK, data)
}

// Created sends a 201 Created response with JSON data.
func Created(w http.ResponseWriter, r *http.Request, data any) {
	JSON(w, r, http.StatusCreated, data)
}
