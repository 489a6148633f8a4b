package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable class of a tool failure. Callers branch
// on the kind, never on the reason text.
type ErrorKind string

const (
	// KindInvalidArgument marks malformed or missing caller input. Never retried.
	KindInvalidArgument ErrorKind = "InvalidArgument"
	// KindNotFound marks a namespace or table that does not exist.
	KindNotFound ErrorKind = "NotFound"
	// KindUnavailable marks a transient backend or network fault. Safe for the
	// caller to retry with backoff.
	KindUnavailable ErrorKind = "Unavailable"
	// KindInternal marks a malformed backend response, a serialization failure
	// or a broken invariant.
	KindInternal ErrorKind = "Internal"
)

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrUnavailable     = &Error{Kind: KindUnavailable}
	ErrInternal        = &Error{Kind: KindInternal}
)

// Error is the structured failure returned across the catalog boundary and
// surfaced to tool callers. Reason is human readable and may include the text
// of the backend error, but never its type.
type Error struct {
	Kind   ErrorKind `json:"kind"`
	Reason string    `json:"reason"`

	// Err is the original cause. It is kept for logging and errors.As and is
	// not serialized.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Retryable reports whether the caller may retry the operation.
func (e *Error) Retryable() bool {
	return e.Kind == KindUnavailable
}

// NewError creates an *Error with a formatted reason.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// WrapError creates an *Error whose reason is the formatted message followed
// by the text of err.
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	reason := fmt.Sprintf(format, args...)
	if err != nil {
		reason = fmt.Sprintf("%s: %s", reason, err.Error())
	}
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. Errors outside
// the taxonomy are Internal; nil has no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// AsError converts any error into an *Error, classifying unknown errors as
// Internal with the given context message.
func AsError(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return WrapError(KindInternal, err, format, args...)
}

// IsInvalidArgument reports whether err is an InvalidArgument failure.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsNotFound reports whether err is a NotFound failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnavailable reports whether err is an Unavailable failure.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
