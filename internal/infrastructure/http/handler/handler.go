package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/todos/internal/application/todo"
	"github.com/rezkam/todos/internal/domain"
	"github.com/rezkam/todos/internal/infrastructure/http/response"
)

// TodoHandler adapts HTTP requests to todo.Service calls.
type TodoHandler struct {
	todoService *todo.Service
}

// NewTodoHandler creates a new HTTP API handler.
func NewTodoHandler(todoService *todo.Service) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// NewAPIRouter returns the routes served under /api.
// Ids must be decimal digits; anything else falls through to the JSON 404.
func NewAPIRouter(h *TodoHandler) http.Handler {
	r := chi.NewRouter()
	r.NotFound(RouteNotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/todos", h.ListTodos)
	r.Post("/todos", h.CreateTodo)
	r.Put("/todos/{todoID:[0-9]+}", h.UpdateTodo)
	r.Delete("/todos/{todoID:[0-9]+}", h.DeleteTodo)

	return r
}

// RouteNotFound answers unknown paths with a JSON 404.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	response.NotFound(w, response.MsgRouteNotFound)
}

// MethodNotAllowed answers known paths hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Error(w, response.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}

// decodeJSON reads an optional JSON object into v.
// An empty body and a literal null leave v untouched, so they behave like {}.
func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBody, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBody, err)
	}
	return nil
}
