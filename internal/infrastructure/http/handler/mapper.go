package handler

import (
	"time"

	"github.com/rezkam/todos/internal/domain"
)

// createTodoRequest and updateTodoRequest use pointers so an absent field
// (or an explicit null) is distinguishable from a zero value.
type createTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type updateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// TodoDTO is the wire form of a todo.
type TodoDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// CreatedTodoDTO is returned by POST /api/todos.
type CreatedTodoDTO struct {
	TodoDTO
	Environment string `json:"environment"`
}

// ListTodosResponse is returned by GET /api/todos.
type ListTodosResponse struct {
	Todos       []TodoDTO `json:"todos"`
	Count       int       `json:"count"`
	Environment string    `json:"environment"`
}

// DeleteTodoResponse is returned by DELETE /api/todos/{id}.
type DeleteTodoResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// HealthResponse is returned by GET /health.
// The two shapes share one type; omitempty drops the fields of the other.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment,omitempty"`
	Version     string `json:"version,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	Error       string `json:"error,omitempty"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// MapTodoToDTO converts domain.Todo to its wire form.
func MapTodoToDTO(t *domain.Todo) TodoDTO {
	return TodoDTO{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: formatTime(t.CreatedAt),
	}
}

// MapTodosToDTO never returns nil, so an empty list encodes as [].
func MapTodosToDTO(todos []domain.Todo) []TodoDTO {
	out := make([]TodoDTO, 0, len(todos))
	for i := range todos {
		out = append(out, MapTodoToDTO(&todos[i]))
	}
	return out
}
