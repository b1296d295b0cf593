package updateset

import "github.com/rezkam/todos/internal/domain"

// Writable columns of the todos table.
const (
	ColumnTitle     = "title"
	ColumnCompleted = "completed"
)

// TodoAssignments lists the columns present in params, title before completed.
// Both stores build their UPDATE from it.
func TodoAssignments(params domain.UpdateTodoParams) []Assignment {
	var out []Assignment
	if params.Title != nil {
		out = append(out, Assignment{Column: ColumnTitle, Value: *params.Title})
	}
	if params.Completed != nil {
		out = append(out, Assignment{Column: ColumnCompleted, Value: *params.Completed})
	}
	return out
}
