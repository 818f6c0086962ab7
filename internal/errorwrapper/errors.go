package errorwrapper

import (
	"errors"
	"fmt"
)

// ErrWorkerUnavailable indicates the diff worker cannot accept requests.
var ErrWorkerUnavailable = errors.New("worker unavailable")

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ComparisonError represents a failure while comparing a single document pair.
// It carries the pair's document indices so batch callers can attribute the
// failure without aborting other pairs.
type ComparisonError struct {
	IndexA  int
	IndexB  int
	Wrapped error
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("comparison failed for pair (%d, %d): %v", e.IndexA, e.IndexB, e.Wrapped)
}

func (e *ComparisonError) Unwrap() error {
	return e.Wrapped
}

// NewComparisonError creates a new comparison error for a document pair
func NewComparisonError(indexA, indexB int, wrapped error) *ComparisonError {
	return &ComparisonError{
		IndexA:  indexA,
		IndexB:  indexB,
		Wrapped: wrapped,
	}
}
