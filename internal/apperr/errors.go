// Package apperr defines the failure kinds surfaced by the API and their
// HTTP status mapping.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindMissingInput
	KindConflict
	KindInvalidCredentials
	KindUnauthenticated
	KindInvalidToken
	KindExternalService
)

// Error carries a client-facing message. Err, when set, is the underlying
// cause and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches cause to a copy of base so that errors.Is(result, base) holds.
func Wrap(base *Error, cause error) *Error {
	return &Error{Kind: base.Kind, Message: base.Message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// Status maps a kind to the HTTP status code returned to the client.
func Status(kind Kind) int {
	switch kind {
	case KindValidation, KindMissingInput, KindConflict:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidToken:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// From extracts an *Error from err. ok is false for errors that were not
// produced by this package.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
