// Package errors defines the coded errors shared by stackplan's packages.
//
// A [Code] says which side is at fault. Caller mistakes (an unknown provider,
// a malformed variable, an unsupported format) are INVALID_* or
// UNKNOWN_PROVIDER. Problems with the project tree are FILE_NOT_FOUND,
// NO_PROVIDER or IO_ERROR. The CLI and the HTTP server branch on the code,
// never on the message:
//
//	if errors.Is(err, errors.ErrCodeNoProvider) {
//	    // nothing to plan
//	}
//
// Codes survive fmt.Errorf("...: %w", err) wrapping.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidVariable Code = "INVALID_VARIABLE"

	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeNoProvider      Code = "NO_PROVIDER"
	ErrCodeUnknownProvider Code = "UNKNOWN_PROVIDER"

	ErrCodeIO       Code = "IO_ERROR"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error pairs a Code with a message and, optionally, the error that caused it.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain carries code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code
// and cause, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
