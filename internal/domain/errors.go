package domain

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Sentinel errors shared by the repositories, services and transports.
// Cycle math reports bad input with its own sentinels; InvalidCycleInput
// turns those into field errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
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

// InvalidCycleInput reports err from a cycle parser as a validation error on
// field.
func InvalidCycleInput(field string, err error) *ValidationError {
	msg := err.Error()
	switch {
	case errors.Is(err, cycle.ErrInvalidDate):
		msg = "must be YYYY-MM-DD"
	case errors.Is(err, cycle.ErrInvalidClockTime):
		msg = "must be HH:MM"
	case errors.Is(err, cycle.ErrInvalidTick):
		msg = "must not be empty"
	case errors.Is(err, cycle.ErrInvalidPhase):
		msg = "must be posting or viewing"
	}
	return NewValidationError(field, msg)
}
