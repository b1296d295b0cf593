package domain

import "time"

// Todo is the single managed resource.
// ID and CreatedAt are assigned by the database and never change afterwards.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
}

// CreateTodoParams carries the client-supplied fields of a new todo.
// A nil Completed defaults to false.
type CreateTodoParams struct {
	Title     *string
	Completed *bool
}

// UpdateTodoParams describes a partial update. Nil fields are left unchanged in storage.
type UpdateTodoParams struct {
	ID        int64
	Title     *string
	Completed *bool
}
