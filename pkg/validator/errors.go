package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrCheckPanicked wraps a panic recovered from a check.
	ErrCheckPanicked = errors.New("validator: check panicked")

	// ErrNoLength is returned when a length rule meets a missing value.
	ErrNoLength = errors.New("validator: value has no length")

	// ErrInvalidPattern is returned when a format argument is not a valid regular expression.
	ErrInvalidPattern = errors.New("validator: invalid pattern")

	// ErrInvalidConfig is returned when a Config cannot produce a Validator.
	ErrInvalidConfig = errors.New("validator: invalid configuration")

	// ErrNilFuture is returned when a future-based check produces no future.
	ErrNilFuture = errors.New("validator: check returned nil future")
)

// FaultError describes an execution fault: a check that errored or panicked
// instead of passing or failing.
type FaultError struct {
	ID    string
	Field string
	Rule  string
	Err   error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("validator: field %q rule %q: %v", e.Field, e.Rule, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
