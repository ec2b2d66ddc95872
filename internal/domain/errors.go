package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized is returned when a request carries no Slack identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPersistenceUnavailable wraps every connectivity or query failure of the
	// collection store. It aborts the interaction that triggered it.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrSearchUnavailable marks a failed call to the external catalog.
	ErrSearchUnavailable = errors.New("search unavailable")

	// ErrMalformedPayload is returned when an action payload cannot be decoded.
	ErrMalformedPayload = errors.New("malformed action payload")
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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
