package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an error so callers can tell "fix your input" from
// "not allowed", "this already happened", and "try again later".
type ErrorKind string

const (
	KindValidation    ErrorKind = "VALIDATION"
	KindAuthorization ErrorKind = "AUTHORIZATION"
	KindStateConflict ErrorKind = "STATE_CONFLICT"
	KindExpired       ErrorKind = "EXPIRED"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindDependency    ErrorKind = "DEPENDENCY"
)

// Error is the error type returned by services and repositories. Field is set
// for validation errors attributable to a single input field (email, phone, ...).
type Error struct {
	Kind    ErrorKind
	Field   string
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

func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NewStateConflictError(message string) *Error {
	return &Error{Kind: KindStateConflict, Message: message}
}

func NewExpiredError(message string) *Error {
	return &Error{Kind: KindExpired, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewDependencyError(message string, err error) *Error {
	return &Error{Kind: KindDependency, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindDependency for errors that carry no
// classification (a raw store or provider failure).
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindDependency
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
