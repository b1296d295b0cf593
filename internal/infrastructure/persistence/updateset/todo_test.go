package updateset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezkam/todos/internal/domain"
)

func TestTodoAssignments(t *testing.T) {
	title := "  Write report "
	done := false

	tests := []struct {
		name   string
		params domain.UpdateTodoParams
		want   []Assignment
	}{
		{"nothing set", domain.UpdateTodoParams{ID: 1}, nil},
		{"title only", domain.UpdateTodoParams{ID: 1, Title: &title}, []Assignment{{Column: ColumnTitle, Value: title}}},
		{"completed false is still an assignment", domain.UpdateTodoParams{ID: 1, Completed: &done}, []Assignment{{Column: ColumnCompleted, Value: false}}},
		{
			"title before completed",
			domain.UpdateTodoParams{ID: 1, Completed: &done, Title: &title},
			[]Assignment{{Column: ColumnTitle, Value: title}, {Column: ColumnCompleted, Value: false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TodoAssignments(tt.params))
		})
	}
}

func TestTodoAssignments_BuildWithBothPlaceholders(t *testing.T) {
	title := "x"
	done := true
	params := domain.UpdateTodoParams{ID: 3, Title: &title, Completed: &done}

	pg, err := todos.Build(params.ID, TodoAssignments(params)...)
	assert.NoError(t, err)
	assert.Equal(t, "UPDATE todos SET title = $1, completed = $2 WHERE id = $3 RETURNING id, title, completed, created_at", pg.SQL)

	lite := todos
	lite.Placeholder = Question
	q, err := lite.Build(params.ID, TodoAssignments(params)...)
	assert.NoError(t, err)
	assert.Equal(t, "UPDATE todos SET title = ?, completed = ? WHERE id = ? RETURNING id, title, completed, created_at", q.SQL)
	assert.Equal(t, pg.Args, q.Args)
}
