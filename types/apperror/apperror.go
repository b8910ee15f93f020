package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure so transports can map it to a status code.
type Kind string

const (
	KindNotFound          Kind = "NotFound"
	KindInvalidState      Kind = "InvalidState"
	KindValidation        Kind = "ValidationError"
	KindDependencyFailure Kind = "DependencyFailure"
)

// Sentinels for errors.Is checks against a kind.
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidState      = &Error{Kind: KindInvalidState}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrDependencyFailure = &Error{Kind: KindDependencyFailure}
)

// Error carries a machine readable kind and a message safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus maps the kind onto a response status.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidState, KindValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Dependency wraps a backend failure. The wrapped error is kept for logs only.
func Dependency(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindDependencyFailure, Message: fmt.Sprintf(format, args...), Err: err}
}

// From converts any error into an *Error, treating unknown errors as dependency failures.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Dependency(err, "internal error")
}
