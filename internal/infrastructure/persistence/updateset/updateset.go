// Package updateset builds parameterized UPDATE statements from a set of column
// assignments. Column names are checked against a fixed allowlist; values only
// ever travel as bind parameters.
package updateset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoAssignments is returned when Build is called without any assignment.
	ErrNoAssignments = errors.New("updateset: no columns to update")

	// ErrColumnNotAllowed is returned when an assignment names a column outside the allowlist.
	ErrColumnNotAllowed = errors.New("updateset: column not allowed")

	// ErrDuplicateColumn is returned when the same column is assigned twice.
	ErrDuplicateColumn = errors.New("updateset: duplicate column")
)

// Placeholder renders the bind parameter for the n-th argument (1-based).
type Placeholder func(n int) string

// Dollar renders PostgreSQL style placeholders: $1, $2, ...
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question renders SQLite/MySQL style placeholders.
func Question(int) string { return "?" }

// Assignment sets Column to Value.
type Assignment struct {
	Column string
	Value  any
}

// Table describes the statement shape for one table. All identifiers are
// trusted constants supplied by the repository, never request input.
type Table struct {
	Name        string
	Key         string
	Allowed     []string
	Returning   []string
	Placeholder Placeholder
}

// Statement is a rendered query and its arguments in placeholder order.
type Statement struct {
	SQL  string
	Args []any
}

// Build renders "UPDATE <name> SET c1 = p1[, ...] WHERE <key> = pN [RETURNING ...]".
func (t Table) Build(key any, assignments ...Assignment) (Statement, error) {
	if len(assignments) == 0 {
		return Statement{}, ErrNoAssignments
	}

	placeholder := t.Placeholder
	if placeholder == nil {
		placeholder = Dollar
	}

	seen := make(map[string]struct{}, len(assignments))
	sets := make([]string, 0, len(assignments))
	args := make([]any, 0, len(assignments)+1)

	for _, a := range assignments {
		if !t.allowed(a.Column) {
			return Statement{}, fmt.Errorf("%w: %q", ErrColumnNotAllowed, a.Column)
		}
		if _, dup := seen[a.Column]; dup {
			return Statement{}, fmt.Errorf("%w: %q", ErrDuplicateColumn, a.Column)
		}
		seen[a.Column] = struct{}{}

		args = append(args, a.Value)
		sets = append(sets, a.Column+" = "+placeholder(len(args)))
	}

	args = append(args, key)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(t.Name)
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(" WHERE ")
	b.WriteString(t.Key)
	b.WriteString(" = ")
	b.WriteString(placeholder(len(args)))
	if len(t.Returning) > 0 {
		b.WriteString(" RETURNING ")
		b.WriteString(strings.Join(t.Returning, ", "))
	}

	return Statement{SQL: b.String(), Args: args}, nil
}

func (t Table) allowed(column string) bool {
	for _, c := range t.Allowed {
		if c == column {
			return true
		}
	}
	return false
}
