package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rezkam/todos/internal/application/todo"
	"github.com/rezkam/todos/internal/infrastructure/http/response"
)

// Health handles GET /health. A failed database ping answers 503.
func (h *TodoHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.todoService.CheckHealth(r.Context())

	if !health.Healthy() {
		slog.WarnContext(r.Context(), "Health check failed", "error", health.Err)
		response.JSON(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status: todo.StatusUnhealthy,
			Error:  health.Err.Error(),
		})
		return
	}

	response.OK(w, r, HealthResponse{
		Status:      health.Status,
		Environment: health.Environment,
		Version:     health.Version,
		Timestamp:   health.CheckedAt.UTC().Format(time.RFC3339),
	})
}
