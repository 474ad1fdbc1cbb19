// Package apperr defines the typed domain errors shared by the core services.
// Callers map kinds to transport responses; nothing in here is retryable.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error.
type Kind string

const (
	// KindInvalidArgument covers malformed or missing reference data.
	KindInvalidArgument Kind = "invalid_argument"
	// KindInvalidState covers operations attempted against a record whose
	// current state forbids them.
	KindInvalidState Kind = "invalid_state"
	// KindValidationFailed covers agreement-rule violations, reported per field.
	KindValidationFailed Kind = "validation_failed"
	// KindNotFound covers lookups of records that do not exist.
	KindNotFound Kind = "not_found"
)

// Error is a structured domain error: kind + optional field + message.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Validation builds a per-field validation error.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidationFailed, Field: field, Message: message}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" if err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
