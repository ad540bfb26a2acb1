package service

import (
	"errors"
	"fmt"

	"textmark/internal/storage"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a change would break a reference held by other records.
	ErrConflict = errors.New("conflict")
	// ErrPageOutOfRange is returned when a chunk page starts past the last chunk.
	ErrPageOutOfRange = fmt.Errorf("page out of range: %w", ErrNotFound)
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// storeError translates storage errors into service errors, keeping the
// original error in the chain.
func storeError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	case errors.Is(err, storage.ErrConstraint):
		return fmt.Errorf("%s: %w: %w", msg, ErrConflict, err)
	default:
		return WrapError(err, msg)
	}
}
