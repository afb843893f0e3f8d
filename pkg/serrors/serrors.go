// Package serrors provides semantic error kinds shared by the prediction
// pipeline and its outer surfaces (CLI, HTTP API, background jobs).
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and match with errors.Is/As through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Pipeline kinds. None of them is transient, so callers should not retry on them.
var (
	// ErrInvalidInputKind indicates the caller passed an input that is neither a
	// single domain, a list of domains nor a domain list file.
	ErrInvalidInputKind = NewKind("INVALID_INPUT_KIND")
	// ErrFileNotFound indicates a domain list path does not resolve to a file.
	ErrFileNotFound = NewKind("FILE_NOT_FOUND")
	// ErrModelUnavailable indicates the classifier has not been loaded.
	ErrModelUnavailable = NewKind("MODEL_UNAVAILABLE")
	// ErrEmptyBatch indicates there were zero domains to classify.
	ErrEmptyBatch = NewKind("EMPTY_BATCH")
)

// Service kinds.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal error.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates an upstream dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional message.
//
// Matching semantics:
//   - errors.Is(err, target) matches either the kind sentinel or the wrapped error.
//   - errors.As(err, target) succeeds for either the kind sentinel or the wrapped error.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and a message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the first semantic kind found in err's chain, or nil when err
// carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the first *Error in err's chain, or an
// empty string.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.msg
	}

	return ""
}
