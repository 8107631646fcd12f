package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the service layer wraps exactly one of them.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("resource already exists")
	ErrDatabase   = errors.New("database error")
)

// CustomError carries a kind plus the user-facing message and, for database
// failures, the underlying cause.
type CustomError struct {
	Err     error
	Message string
	Fields  []string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewValidationError reports missing or malformed input.
func NewValidationError(message string, fields ...string) error {
	return &CustomError{
		Err:     ErrValidation,
		Message: message,
		Fields:  fields,
	}
}

// NewNotFoundError reports an absent parent or target row.
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewNotFoundErrorf is NewNotFoundError with formatting.
func NewNotFoundErrorf(format string, args ...interface{}) error {
	return NewNotFoundError(fmt.Sprintf(format, args...))
}

// NewConflictError reports a natural-key duplicate.
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewDatabaseError wraps a statement failure that no earlier check anticipated.
func NewDatabaseError(cause error) error {
	if cause == nil {
		return nil
	}
	var ce *CustomError
	if errors.As(cause, &ce) {
		return cause
	}
	return &CustomError{
		Err:   ErrDatabase,
		Cause: cause,
	}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Fields returns the offending field names of a validation error, if any.
func Fields(err error) []string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Fields
	}
	return nil
}

// Message returns the user-facing message of err.
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return err.Error()
}

// CauseMessage returns the underlying cause text of a database error.
func CauseMessage(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Cause != nil {
		return ce.Cause.Error()
	}
	return err.Error()
}
