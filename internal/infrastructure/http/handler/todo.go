package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/todos/internal/domain"
	"github.com/rezkam/todos/internal/infrastructure/http/response"
)

// ListTodos handles GET /api/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	dtos := MapTodosToDTO(todos)
	response.OK(w, r, ListTodosResponse{
		Todos:       dtos,
		Count:       len(dtos),
		Environment: h.todoService.Environment(),
	})
}

// CreateTodo handles POST /api/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	created, err := h.todoService.CreateTodo(r.Context(), domain.CreateTodoParams{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "todo created via HTTP", "todo_id", created.ID)

	response.Created(w, r, CreatedTodoDTO{
		TodoDTO:     MapTodoToDTO(created),
		Environment: h.todoService.Environment(),
	})
}

// UpdateTodo handles PUT /api/todos/{id}. Only fields present in the body are written.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		response.NotFound(w, response.MsgTodoNotFound)
		return
	}

	var req updateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	updated, err := h.todoService.UpdateTodo(r.Context(), domain.UpdateTodoParams{
		ID:        id,
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "todo updated via HTTP", "todo_id", updated.ID)

	response.OK(w, r, MapTodoToDTO(updated))
}

// DeleteTodo handles DELETE /api/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		response.NotFound(w, response.MsgTodoNotFound)
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "todo deleted via HTTP", "todo_id", id)

	response.OK(w, r, DeleteTodoResponse{
		Message: "Todo deleted",
		ID:      id,
	})
}

// todoID parses the route id. The route pattern already restricts it to
// digits, so the only failure left is an id that overflows int64.
func todoID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "todoID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
