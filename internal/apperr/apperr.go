// Package apperr defines the domain error taxonomy shared by services and
// controllers. Services return these; the transport layer maps each kind to an
// HTTP status and never leaks query or stack detail to the client.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindUnknown marks errors that did not originate in domain logic,
	// e.g. a persistence outage. The transport maps it to 500.
	KindUnknown Kind = iota
	// KindNotFound: the referenced entity does not exist.
	KindNotFound
	// KindForbidden: the entity exists but the actor lacks rights on it.
	KindForbidden
	// KindValidation: input violates a domain invariant.
	KindValidation
	// KindConflict: the operation collides with pre-existing state,
	// e.g. a duplicate submission.
	KindConflict
	// KindUnauthenticated: no valid session.
	KindUnauthenticated
)

type Error struct {
	Kind    Kind
	Message string
	// Err holds the underlying cause, if any. Never shown to clients.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthenticated, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an infrastructure failure so callers can still log the cause.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindUnknown, Message: msg, Err: err}
}

// KindOf extracts the kind from err, unwrapping as needed.
// Errors outside the taxonomy report KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the client-safe message for err. For errors outside the
// taxonomy it returns a generic message so internals stay hidden.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
