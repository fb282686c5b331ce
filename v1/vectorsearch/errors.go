package vectorsearch

import (
	"errors"
	"fmt"
)

// Common vector search errors.
var (
	// ErrUnknownField is returned when a search targets a field that is not
	// registered as a vector field.
	ErrUnknownField = errors.New("vectorsearch: unknown vector field")
)

// DimensionError is returned when a query vector's length does not match the
// registered dimension of the target field.
type DimensionError struct {
	Field string
	Want  int
	Got   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("vectorsearch: field %q expects dimension %d, got %d", e.Field, e.Want, e.Got)
}

// StoreError wraps a datastore execution failure. The underlying error is
// preserved unchanged and reachable via errors.Is/As and Unwrap; no retry or
// translation is performed.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "vectorsearch: query execution failed: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsUnknownFieldError checks if the error indicates an unregistered field.
func IsUnknownFieldError(err error) bool {
	return errors.Is(err, ErrUnknownField)
}

// IsDimensionError checks if the error indicates a query vector length mismatch.
func IsDimensionError(err error) bool {
	var de *DimensionError
	return errors.As(err, &de)
}

// IsStoreError checks if the error originated in the datastore.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
