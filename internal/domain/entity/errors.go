package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrColumnMissing indicates that a schema field could not be bound to
	// any column of the loaded dataset.
	ErrColumnMissing = errors.New("column not found in dataset")

	// ErrInvalidSchema indicates that a schema declaration is malformed.
	ErrInvalidSchema = errors.New("invalid schema")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
