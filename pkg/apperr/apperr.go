// Package apperr defines the error taxonomy shared by the store adapters and
// the HTTP handlers: a malformed identifier and a missing required field are
// client errors, an absent record is not found, and everything else coming
// out of the store is a StoreError.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the identifier is well-formed but no record matches it.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID means the identifier is not syntactically valid for the store.
	ErrInvalidID = errors.New("invalid identifier")
)

// ValidationError rejects a request before it reaches persistence.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Required reports a missing or empty required field.
func Required(field string) error {
	return &ValidationError{Message: field + " is required"}
}

// Invalid reports any other boundary-validation failure.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps an unexpected persistence failure with the operation that
// produced it. Handlers map it to a 500 without exposing the wrapped detail.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError, passing nil through untouched.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
