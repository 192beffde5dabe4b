package errors

import (
	"net/http"

	"pinmap/internal/errors"
)

// StoreError wraps a network, auth or database failure of the remote pin store.
type StoreError struct {
	op  string
	err error
}

// NewStoreError creates a StoreError for the named store operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{op: op, err: err}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.err == nil {
		return "pin store " + e.op + " failed"
	}

	return errors.Wrapf(e.err, "pin store %s failed", e.op).Error()
}

// Unwrap exposes the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.err
}

// Is makes errors.Is(err, ErrStoreUnavailable) hold for every StoreError.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// Op returns the failed operation name.
func (e *StoreError) Op() string {
	return e.op
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return ErrStoreUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return ErrStoreUnavailable.Message()
}

// Details returns detailed error information
func (e *StoreError) Details() any {
	return nil
}
