package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters in a title.
const MaxTitleLength = 255

// Title is a validated title value object (1-255 characters).
type Title struct {
	value string
}

// NewTitle creates a new Title, validating the input.
// The title is kept exactly as given; whitespace only matters for the emptiness check.
func NewTitle(s string) (Title, error) {
	if strings.TrimSpace(s) == "" {
		return Title{}, ErrTitleRequired
	}

	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}

	return Title{value: s}, nil
}

// String returns the title value.
func (t Title) String() string {
	return t.value
}
