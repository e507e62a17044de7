package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates the application error categories.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInternal     Kind = "internal"
)

// AppError is an operational error with an HTTP-mappable kind and a short
// human-readable message safe to return to clients.
type AppError struct {
	kind    Kind
	message string
	cause   error
}

// New constructs an AppError with the supplied kind and message.
func New(kind Kind, message string) *AppError {
	if message == "" {
		message = string(kind)
	}
	return &AppError{kind: kind, message: message}
}

// Invalid returns an InvalidInput error.
func Invalid(format string, args ...any) *AppError {
	return New(KindInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound returns a NotFound error.
func NotFound(format string, args ...any) *AppError {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// Conflict returns a Conflict error.
func Conflict(format string, args ...any) *AppError {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

// Unauthorized returns an Unauthorized error.
func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, message)
}

// Forbidden returns a Forbidden error.
func Forbidden(message string) *AppError {
	return New(KindForbidden, message)
}

// Internal wraps an unexpected error. The cause is retained for logging
// but the client only ever sees the generic message.
func Internal(cause error) *AppError {
	return &AppError{kind: KindInternal, message: "Something went wrong", cause: cause}
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *AppError) Unwrap() error { return e.cause }

// Kind returns the error category.
func (e *AppError) Kind() Kind { return e.kind }

// Message returns the client-safe message.
func (e *AppError) Message() string { return e.message }

// StatusCode resolves the HTTP status for the error kind.
func (e *AppError) StatusCode() int {
	switch e.kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.kind == kind
}

// From coerces any error into an AppError, wrapping unknown errors as
// Internal so store-level failures never leak detail to clients.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
