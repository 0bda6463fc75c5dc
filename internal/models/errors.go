package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldError is one failed constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// ValidationErrors collects every field constraint a record failed. The
// write is aborted as a whole; callers get all failures at once.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// NormalizationError reports a date or time value that could not be parsed
// into its canonical form. Err carries the message naming the raw value.
type NormalizationError struct {
	Field string
	Err   error
}

func (e *NormalizationError) Error() string { return e.Err.Error() }

func (e *NormalizationError) Unwrap() error { return e.Err }

// ReferenceError reports a Booking pointing at an Event that does not exist.
type ReferenceError struct {
	EventID uuid.UUID
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("event with id %q does not exist", e.EventID)
}
