// Package errors defines the coded errors returned by tooltipkit's data view
// import, configuration, cache and server layers. The tooltip core itself
// never fails.
//
// Every error carries a [Code]; callers branch on the code or on its [Kind]
// rather than on message text:
//
//	err := errors.New(errors.ErrCodeInvalidColumnRef, "unknown column %q", ref)
//	if errors.Is(err, errors.ErrCodeInvalidColumnRef) { ... }
//	switch errors.KindOf(err) { case errors.KindNotFound: ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDataView  Code = "INVALID_DATAVIEW"
	ErrCodeInvalidColumnRef Code = "INVALID_COLUMN_REF"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidLocale    Code = "INVALID_LOCALE"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidIndex     Code = "INVALID_INDEX"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Kind groups codes by who has to act on them.
type Kind int

const (
	KindInternal    Kind = iota // a bug or an environment failure
	KindValidation              // the caller sent something malformed
	KindNotFound                // the named resource does not exist
	KindUnsupported             // the operation is not available in this setup
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindUnsupported:
		return "unsupported"
	default:
		return "internal"
	}
}

// Kind classifies c. Every INVALID_* code is a validation failure; unknown
// codes are internal.
func (c Code) Kind() Kind {
	switch {
	case strings.HasPrefix(string(c), "INVALID_"):
		return KindValidation
	case c == ErrCodeNotFound, c == ErrCodeFileNotFound:
		return KindNotFound
	case c == ErrCodeUnsupported:
		return KindUnsupported
	default:
		return KindInternal
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is makes errors.Is match any *Error with the same code, so
// errors.Is(err, &Error{Code: ErrCodeNotFound}) works across wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Cause == nil && t.Code == e.Code
}

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// KindOf classifies err. Errors without a code are internal.
func KindOf(err error) Kind {
	return GetCode(err).Kind()
}

// IsValidation reports whether err carries one of the INVALID_* codes.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// UserMessage renders err for people: the message and cause without the
// code prefix.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
