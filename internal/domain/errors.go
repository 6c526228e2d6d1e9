package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	// ErrValidation is the root of every validation failure.
	ErrValidation = errors.New("validation error")

	// ErrEmptyTitle indicates a task without a title.
	ErrEmptyTitle = errors.New("title is required")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap exposes the wrapped error to errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is lets every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
