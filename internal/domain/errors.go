package domain

import "errors"

// Domain errors returned by the service and repository implementations.
// Anything that does not wrap one of these is treated as a persistence failure.

var (
	// ErrTitleRequired indicates the title is missing or blank.
	ErrTitleRequired = errors.New("title is required")

	// ErrTitleTooLong indicates the title exceeds MaxTitleLength characters.
	ErrTitleTooLong = errors.New("title must be 255 characters or less")

	// ErrNoFieldsToUpdate indicates an update request carried neither title nor completed.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInvalidBody indicates the request body is not a JSON object of the expected shape.
	ErrInvalidBody = errors.New("invalid JSON body")

	// ErrTodoNotFound indicates no todo exists with the requested ID.
	ErrTodoNotFound = errors.New("todo not found")
)

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrNoFieldsToUpdate) ||
		errors.Is(err, ErrInvalidBody)
}
