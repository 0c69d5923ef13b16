// Package apperr defines the coded application errors the CLI surfaces to
// a user, distinct from the panics the core engine raises on programmer-
// error invariant violations.
package apperr

import (
	"errors"
	"fmt"
)

// Error codes for the mining CLI's fatal conditions.
const (
	CodeUnknown         = "UNKNOWN_ERROR"
	CodeLoadError       = "LOAD_ERROR"
	CodeFormatError     = "FORMAT_ERROR"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeMissingFlag     = "MISSING_FLAG"
	CodeValidationError = "VALIDATION_ERROR"
	CodeConfigError     = "CONFIG_ERROR"
)

// Error is a coded, wrappable error. It implements errors.Is against
// another *Error by comparing codes, so callers can match on "any load
// error" without caring about the specific message.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates an unwrapped coded error.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an existing error.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common error instances, matched via errors.Is.
var (
	ErrLoadError       = New(CodeLoadError, "failed to load graph")
	ErrFormatError     = New(CodeFormatError, "malformed graph file")
	ErrInvalidInput    = New(CodeInvalidInput, "invalid input")
	ErrMissingFlag     = New(CodeMissingFlag, "missing required flag")
	ErrValidationError = New(CodeValidationError, "solution failed validation")
	ErrConfigError     = New(CodeConfigError, "configuration error")
)

// Code extracts the code from err, or CodeUnknown if err is not (or does
// not wrap) an *Error.
func Code(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}
