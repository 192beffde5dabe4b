package errors

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

// ValidationError reports rejected user input, keyed by field name.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates an empty ValidationError; use Add to populate it.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string]string)}
}

// Add records a message for field. The first message per field wins.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if _, exists := e.fields[field]; !exists {
		e.fields[field] = message
	}

	return e
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.fields) > 0
}

// OrNil returns e when it has errors and nil otherwise.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}

	return e
}

// Fields returns a copy of the field messages.
func (e *ValidationError) Fields() map[string]string {
	return maps.Clone(e.fields)
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the per-field messages
func (e *ValidationError) Details() any {
	return e.Fields()
}
