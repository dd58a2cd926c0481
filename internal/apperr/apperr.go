// Package apperr defines the error kinds surfaced to users of the sales
// analysis core. Callers branch on Kind; the message is meant for humans.
package apperr

import (
	stdErrors "errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	KindSchema           Kind = "SchemaError"
	KindDateParse        Kind = "DateParseError"
	KindAmountParse      Kind = "AmountParseError"
	KindEncoding         Kind = "EncodingError"
	KindNoData           Kind = "NoDataError"
	KindInput            Kind = "InputError"
	KindInsufficientData Kind = "InsufficientDataError"
	KindReport           Kind = "ReportGenerationError"
)

// Error is a kinded error with an optional cause.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New returns an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap returns an Error of the given kind that unwraps to err.
func Wrap(kind Kind, err error, message string) *Error {
	if err == nil {
		return New(kind, message)
	}
	return &Error{kind: kind, message: message, cause: err}
}

// Kind returns the error kind.
func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

// Message returns the message without the cause.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	return As(err).Kind()
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
