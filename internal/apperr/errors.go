// Package apperr defines the error taxonomy shared by services and handlers.
// Every error carries the HTTP status it maps to and a message that is safe
// to return to clients; the underlying cause is kept for logging only.
package apperr

import (
	"errors"
	"net/http"
)

// Kinds. Match with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrAuthentication = errors.New("authentication error")
	ErrStorage        = errors.New("storage error")
)

// Error is an application error with a client-facing message.
type Error struct {
	kind     error
	httpCode int
	message  string
	cause    error
}

func newError(kind error, httpCode int, message string, cause error) *Error {
	return &Error{kind: kind, httpCode: httpCode, message: message, cause: cause}
}

// Validation reports a missing or empty required field.
func Validation(message string) *Error {
	return newError(ErrValidation, http.StatusBadRequest, message, nil)
}

// Conflict reports a uniqueness violation such as a duplicate registration.
func Conflict(message string) *Error {
	return newError(ErrConflict, http.StatusBadRequest, message, nil)
}

// NotFound reports an absent update or delete target.
func NotFound(message string) *Error {
	return newError(ErrNotFound, http.StatusNotFound, message, nil)
}

// Authentication reports bad credentials. The message must not reveal which
// credential was wrong.
func Authentication(message string) *Error {
	return newError(ErrAuthentication, http.StatusBadRequest, message, nil)
}

// Storage wraps a store failure. message is returned to clients, cause is not.
func Storage(message string, cause error) *Error {
	return newError(ErrStorage, http.StatusInternalServerError, message, cause)
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func (e *Error) HTTPCode() int { return e.httpCode }

func (e *Error) Message() string { return e.message }

func (e *Error) Cause() error { return e.cause }

// From extracts an *Error from err's tree. Anything else is treated as an
// unexpected storage failure with the given fallback message.
func From(err error, fallback string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Storage(fallback, err)
}
