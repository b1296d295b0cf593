package todo

import (
	"context"

	"github.com/rezkam/todos/internal/domain"
)

// Repository defines storage operations for todo management.
// Implementations run every call as a single statement on a connection borrowed
// from their pool for the duration of the call.
type Repository interface {
	// ListTodos returns every todo, newest first.
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// CreateTodo inserts a todo and returns it with ID and CreatedAt assigned by the database.
	CreateTodo(ctx context.Context, title string, completed bool) (*domain.Todo, error)

	// UpdateTodo writes only the non-nil fields of params and returns the full row.
	// Returns domain.ErrTodoNotFound if no row has params.ID.
	UpdateTodo(ctx context.Context, params domain.UpdateTodoParams) (*domain.Todo, error)

	// DeleteTodo removes the todo.
	// Returns domain.ErrTodoNotFound if no row has the ID.
	DeleteTodo(ctx context.Context, id int64) error

	// Ping acquires a connection, checks it, and releases it.
	Ping(ctx context.Context) error
}
