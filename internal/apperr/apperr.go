// Package apperr is the studio's error taxonomy. Callers classify failures
// with IsValidation / IsNotFound; front ends map the types to user-facing
// responses.
package apperr

import (
	"errors"
	"fmt"
)

// Type categorises an error.
type Type string

const (
	TypeValidation Type = "VALIDATION"
	TypeNotFound   Type = "NOT_FOUND"
	TypeConflict   Type = "CONFLICT"
	TypeInternal   Type = "INTERNAL"
)

// AppError carries a type, a message and an optional cause.
type AppError struct {
	Type    Type
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidation creates a validation error
func NewValidation(format string, args ...any) error {
	return &AppError{Type: TypeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a not found error
func NewNotFound(format string, args ...any) error {
	return &AppError{Type: TypeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewConflict creates a conflict error
func NewConflict(format string, args ...any) error {
	return &AppError{Type: TypeConflict, Message: fmt.Sprintf(format, args...)}
}

// NewInternal creates an internal error
func NewInternal(message string, err error) error {
	return &AppError{Type: TypeInternal, Message: message, Err: err}
}

// Wrap adds context to err. An AppError keeps its type; anything else
// becomes internal.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
		}
	}
	return &AppError{Type: TypeInternal, Message: message, Err: err}
}

// TypeOf returns the type of the first AppError in err's chain, or
// TypeInternal for foreign errors.
func TypeOf(err error) Type {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return TypeInternal
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool { return err != nil && TypeOf(err) == TypeValidation }

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return err != nil && TypeOf(err) == TypeNotFound }

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool { return err != nil && TypeOf(err) == TypeConflict }
