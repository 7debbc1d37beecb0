package shared

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a candidate record violates a field rule.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate indicates a unique code is already taken.
	ErrDuplicate = errors.New("duplicate entry")
)

// FieldErrors maps a field path (json name, e.g. "items[0].quantity") to a
// human readable message.
type FieldErrors map[string]string

// Err returns nil when there are no violations, otherwise a *ValidationError.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// Fields returns the sorted field paths.
func (f FieldErrors) Fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidationError carries per-field violations. It matches ErrValidation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields.Fields() {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldErrorsOf extracts the violations carried by err, if any.
func FieldErrorsOf(err error) FieldErrors {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
