// Package errors provides a structured error type hierarchy for founder.
//
// This package defines base error types for common error conditions, a
// wrapped error type that adds contextual information, and helper functions
// for error wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - history file or referenced path not found
//   - ErrPermission - read or write access denied
//   - ErrIO - other file I/O error
//   - ErrInvalid - validation failed
//   - ErrCanceled - user canceled operation
//
// Wrapped error type (adds context):
//   - HistoryError{Op, Path, Err} - history file operation errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrNotFound
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "readHistory")
//
//	// Use the structured error type
//	return &errors.HistoryError{Op: "clean", Path: p, Err: errors.ErrNotFound}
//
//	// Check error types
//	if errors.IsNotFound(err) {
//	    // handle not found
//	}
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates the history file or a referenced path was not found.
	ErrNotFound = baseError("not found")

	// ErrPermission indicates read or write access was denied.
	ErrPermission = baseError("permission denied")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// HistoryError represents an error that occurred during a history file operation.
type HistoryError struct {
	// Op is the operation being performed (e.g., "load", "clean", "append").
	Op string
	// Path is the history file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *HistoryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("history %s %q: %s", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("history %s: %s", e.Op, e.Err)
}

func (e *HistoryError) Unwrap() error { return e.Err }

// FromOS classifies an OS-level error into the founder taxonomy while
// keeping the original error in the chain, so both
// errors.Is(err, ErrNotFound) and errors.Is(err, fs.ErrNotExist) hold.
// A nil error stays nil.
func FromOS(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return &classifiedError{class: ErrNotFound, err: err}
	case errors.Is(err, fs.ErrPermission):
		return &classifiedError{class: ErrPermission, err: err}
	default:
		return &classifiedError{class: ErrIO, err: err}
	}
}

// classifiedError attaches a sentinel classification to an OS error.
type classifiedError struct {
	class baseError
	err   error
}

func (e *classifiedError) Error() string { return e.err.Error() }

func (e *classifiedError) Unwrap() error { return e.err }

func (e *classifiedError) Is(target error) bool { return target == e.class }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPermission reports whether err is or wraps ErrPermission.
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// AsHistoryError reports whether err can be typed as a *HistoryError.
func AsHistoryError(err error) (*HistoryError, bool) {
	var he *HistoryError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
