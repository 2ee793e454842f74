package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Infrastructure errors
	ErrInfrastructure  = errors.New("infrastructure failure")
	ErrNotConnected    = errors.New("database not connected")
	ErrUnknownDatabase = errors.New("unknown database driver")
)

// ValidationError reports a single offending field of a document.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidationFailed, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidationFailed, e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// InfrastructureError wraps a storage or connection fault.
type InfrastructureError struct {
	Op  string
	Err error
}

// NewInfrastructureError wraps err as a fault of operation op.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

func (e *InfrastructureError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + ErrInfrastructure.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the wrapped driver error.
func (e *InfrastructureError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInfrastructure}
	}
	return []error{ErrInfrastructure, e.Err}
}

// IsValidation reports whether err is (or wraps) a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsInfrastructure reports whether err is (or wraps) an infrastructure failure.
func IsInfrastructure(err error) bool {
	return errors.Is(err, ErrInfrastructure)
}
