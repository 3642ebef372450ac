package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a venue, artist or show does not exist.
	ErrNotFound = errors.New("not found")
	// ErrShowOverlap is returned when a candidate show intersects one of the artist's bookings.
	ErrShowOverlap = errors.New("artist already booked for an overlapping time")
	// ErrInvalidInterval is returned when a show does not end after it starts.
	ErrInvalidInterval = errors.New("show must end after it starts")
	// ErrStartInPast is returned when a show would start before the current time.
	ErrStartInPast = errors.New("show cannot start in the past")
)

// ValidationError carries field-level messages from form or input validation.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError with a single field message.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PersistenceError wraps a storage failure (constraint violation, connection error)
// with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
