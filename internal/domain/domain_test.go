package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "Buy milk", "Buy milk", nil},
		{"surrounding whitespace is kept", "  Buy milk \n", "  Buy milk \n", nil},
		{"empty", "", "", ErrTitleRequired},
		{"whitespace only", "   \t", "", ErrTitleRequired},
		{"exactly max length", strings.Repeat("a", MaxTitleLength), strings.Repeat("a", MaxTitleLength), nil},
		{"too long", strings.Repeat("a", MaxTitleLength+1), "", ErrTitleTooLong},
		{"multibyte counts characters", strings.Repeat("ü", MaxTitleLength), strings.Repeat("ü", MaxTitleLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := NewTitle(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, title.String())
		})
	}
}

func TestCreateTodoParams_Validate(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		_, _, err := CreateTodoParams{Completed: boolPtr(true)}.Validate()
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("completed defaults to false", func(t *testing.T) {
		title, completed, err := CreateTodoParams{Title: strPtr("Write tests")}.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Write tests", title.String())
		assert.False(t, completed)
	})

	t.Run("completed is honoured", func(t *testing.T) {
		_, completed, err := CreateTodoParams{Title: strPtr("Ship"), Completed: boolPtr(true)}.Validate()
		require.NoError(t, err)
		assert.True(t, completed)
	})
}

func TestUpdateTodoParams_Validate(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		p := UpdateTodoParams{ID: 1}
		assert.True(t, p.IsEmpty())
		assert.ErrorIs(t, p.Validate(), ErrNoFieldsToUpdate)
	})

	t.Run("completed only", func(t *testing.T) {
		p := UpdateTodoParams{ID: 1, Completed: boolPtr(false)}
		require.NoError(t, p.Validate())
		assert.Nil(t, p.Title)
	})

	t.Run("title is kept as submitted", func(t *testing.T) {
		p := UpdateTodoParams{ID: 1, Title: strPtr("  renamed  ")}
		require.NoError(t, p.Validate())
		require.NotNil(t, p.Title)
		assert.Equal(t, "  renamed  ", *p.Title)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		p := UpdateTodoParams{ID: 1, Title: strPtr(" ")}
		assert.ErrorIs(t, p.Validate(), ErrTitleRequired)
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrTitleRequired))
	assert.True(t, IsValidation(fmt.Errorf("create: %w", ErrTitleTooLong)))
	assert.True(t, IsValidation(ErrNoFieldsToUpdate))
	assert.True(t, IsValidation(ErrInvalidBody))
	assert.False(t, IsValidation(ErrTodoNotFound))
	assert.False(t, IsValidation(errors.New("connection refused")))
}
