package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rezkam/todos/internal/domain"
	"github.com/rezkam/todos/internal/infrastructure/persistence/updateset"
)

const (
	listTodosSQL = `SELECT id, title, completed, created_at FROM todos ORDER BY created_at DESC, id DESC`

	createTodoSQL = `INSERT INTO todos (title, completed) VALUES (?, ?) RETURNING id, title, completed, created_at`

	deleteTodoSQL = `DELETE FROM todos WHERE id = ?`
)

var todosTable = updateset.Table{
	Name:        "todos",
	Key:         "id",
	Allowed:     []string{updateset.ColumnTitle, updateset.ColumnCompleted},
	Returning:   []string{"id", "title", "completed", "created_at"},
	Placeholder: updateset.Question,
}

type scanner interface {
	Scan(dest ...any) error
}

// scanTodo reads one row. created_at is stored as RFC 3339 text in UTC.
func scanTodo(row scanner) (domain.Todo, error) {
	var (
		t         domain.Todo
		createdAt string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Completed, &createdAt); err != nil {
		return domain.Todo{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	t.CreatedAt = ts.UTC()

	return t, nil
}

// ListTodos returns all todos, newest first.
func (s *Store) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := s.db.QueryContext(ctx, listTodosSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// CreateTodo inserts a todo; the database assigns id and created_at.
func (s *Store) CreateTodo(ctx context.Context, title string, completed bool) (*domain.Todo, error) {
	t, err := scanTodo(s.db.QueryRowContext(ctx, createTodoSQL, title, completed))
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

	t, err := scanTodo(s.db.QueryRowContext(ctx, stmt.SQL, stmt.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrTodoNotFound, params.ID)
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return &t, nil
}

// DeleteTodo removes the todo with the given id.
func (s *Store) DeleteTodo(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteTodoSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTodoNotFound, id)
	}

	return nil
}
