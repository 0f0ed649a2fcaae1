package errs

import (
	"errors"
	"fmt"
)

// Common sentinel errors.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("data conflict")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPersistence        = errors.New("persistence failure")
)

// Lets callers know which field failed validation and why.
// Recoverable: the menu layer re-prompts on it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Returned by the phone sort when a stored phone value is not a pure
// integer string. Keeps the offending value so the caller can point at
// the record that blocks the sort.
type InvalidPhoneFormatError struct {
	Value string
}

func (e *InvalidPhoneFormatError) Error() string {
	return fmt.Sprintf("phone %q is not a numeric value", e.Value)
}
