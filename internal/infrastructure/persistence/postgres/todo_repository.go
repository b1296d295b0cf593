package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rezkam/todos/internal/domain"
	"github.com/rezkam/todos/internal/infrastructure/persistence/updateset"
)

const (
	listTodosSQL = `SELECT id, title, completed, created_at FROM todos ORDER BY created_at DESC, id DESC`

	createTodoSQL = `INSERT INTO todos (title, completed) VALUES ($1, $2) RETURNING id, title, completed, created_at`

	deleteTodoSQL = `DELETE FROM todos WHERE id = $1`
)

var todosTable = updateset.Table{
	Name:        "todos",
	Key:         "id",
	Allowed:     []string{updateset.ColumnTitle, updateset.ColumnCompleted},
	Returning:   []string{"id", "title", "completed", "created_at"},
	Placeholder: updateset.Dollar,
}

// checkRowsAffected validates that an UPDATE/DELETE operation affected a row.
// Returns domain.ErrTodoNotFound if rowsAffected == 0.
func checkRowsAffected(rowsAffected int64, id int64) error {
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTodoNotFound, id)
	}
	return nil
}

func scanTodo(row pgx.Row) (domain.Todo, error) {
	var t domain.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
		return domain.Todo{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

// ListTodos returns all todos, newest first.
func (s *Store) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := s.pool.Query(ctx, listTodosSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}

	todos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Todo, error) {
		return scanTodo(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan todos: %w", err)
	}

	return todos, nil
}

// CreateTodo inserts a todo; the database assigns id and created_at.
func (s *Store) CreateTodo(ctx context.Context, title string, completed bool) (*domain.Todo, error) {
	t, err := scanTodo(s.pool.QueryRow(ctx, createTodoSQL, title, completed))
	if err != nil {
		return nil, fmt.Errorf("failed to insert todo: %w", err)
	}

	return &t, nil
}

// UpdateTodo writes the fields present in params and returns the updated row.
func (s *Store) UpdateTodo(ctx context.Context, params domain.UpdateTodoParams) (*domain.Todo, error) {
	stmt, err := todosTable.Build(params.ID, updateset.TodoAssignments(params)...)
	if err != nil {
		if errors.Is(err, updateset.ErrNoAssignments) {
			return nil, domain.ErrNoFieldsToUpdate
		}
		return nil, fmt.Errorf("failed to build update: %w", err)
	}

	t, err := scanTodo(s.pool.QueryRow(ctx, stmt.SQL, stmt.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrTodoNotFound, params.ID)
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &t, nil
}

// DeleteTodo removes the todo with the given id.
func (s *Store) DeleteTodo(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, deleteTodoSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return checkRowsAffected(tag.RowsAffected(), id)
}
