package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers. Handlers map these onto HTTP
// responses; services and repositories wrap them with context.
var (
	// ErrNotFound signals that an id or slug does not resolve to a
	// non-deleted row.
	ErrNotFound = errors.New("not found")

	// ErrForbidden signals a missing session or a non-admin role on a
	// mutating action.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports user-correctable input problems: empty title,
// malformed content, oversized uploads. Surfaced verbatim to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a storage failure: constraint violation, lost
// connectivity. Logged and surfaced as a generic retry message; never
// retried automatically.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the failing operation's name.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
