package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrPersistence   = errors.New("persistence fault")

	// ErrGenerationFailed is the single user-facing error surfaced after the
	// retry budget is exhausted. The underlying causes (malformed output,
	// empty explanation, transport error) are logged, never returned.
	ErrGenerationFailed = errors.New("could not produce a usable result, try again")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// DuplicateError reports a create attempted on sentence content that is
// already stored. It carries the existing record's id so callers do not
// need a second lookup.
type DuplicateError struct {
	ExistingID uuid.UUID
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("sentence already exists (id %s)", e.ExistingID)
}

func (e *DuplicateError) Unwrap() error { return ErrAlreadyExists }
