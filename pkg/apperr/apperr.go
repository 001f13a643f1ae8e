package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies service failures so handlers can map them to precise
// HTTP responses instead of matching on message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindPermissionDenied
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPermissionDenied:
		return "permission_denied"
	case KindInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing resource, e.g. NotFound("movie", "id", id).
func NotFound(resource, field string, value any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found with %s: %v", resource, field, value),
	}
}

// Conflict reports a state collision such as a duplicate like or follow.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// PermissionDenied reports an ownership or role violation.
func PermissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

// Invalid reports a request that can never succeed, like a self-follow.
func Invalid(message string) *Error {
	return &Error{Kind: KindInvalid, Message: message}
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Unclassified errors
// report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
