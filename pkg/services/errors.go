package services

import (
	"errors"
	"fmt"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/pkg/store"
)

var (
	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// wrapNotFound maps ent's not-found error onto the sentinel the simulation
// core checks, so callers never import ent to classify failures.
func wrapNotFound(err error, what, id string) error {
	if ent.IsNotFound(err) {
		return fmt.Errorf("%s %s: %w", what, id, store.ErrNotFound)
	}
	return fmt.Errorf("get %s %s: %w", what, id, err)
}
