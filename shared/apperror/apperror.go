package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by how it is reported to API clients.
type Kind int

const (
	// KindInternal covers infrastructure and third-party failures.
	KindInternal Kind = iota
	// KindValidation is raised when a request fails input validation.
	KindValidation
	// KindBusiness is an expected negative outcome, reported with HTTP 200.
	KindBusiness
	// KindRouting is raised when a request cannot be mapped to an operation.
	KindRouting
	// KindRateLimited is raised when a client exceeds its request budget.
	KindRateLimited
)

// Error is an error carrying a Kind and a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
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

// Business creates an expected failure that is returned as {success:false}.
func Business(message string) *Error {
	return &Error{Kind: KindBusiness, Message: message}
}

// Validation creates an input validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf creates an input validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// Routing creates an error for requests that do not resolve to an operation.
func Routing(message string) *Error {
	return &Error{Kind: KindRouting, Message: message}
}

// RateLimited creates an error for clients that exhausted their budget.
func RateLimited(message string) *Error {
	return &Error{Kind: KindRateLimited, Message: message}
}

// Wrap prefixes an infrastructure error with the failed action, e.g.
// Wrap(err, "get series") reads "Failed to get series: <cause>".
// Validation and business errors pass through untouched.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return err
	}

	return &Error{Kind: KindInternal, Message: "Failed to " + action, Err: err}
}

// KindOf returns the Kind of err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Message returns the message that is safe to put in a response body.
// Internal errors expose their full text, matching the public API contract.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return err.Error()
}

// HTTPStatus maps err to the status code of the response envelope.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindBusiness:
		return http.StatusOK
	case KindRouting:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
