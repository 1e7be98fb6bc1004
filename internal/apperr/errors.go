// Package apperr defines the typed application errors use cases raise and
// the edge normalizer renders. Infrastructure failures are deliberately not
// part of this taxonomy; they propagate unwrapped and surface as 500s.
package apperr

import (
	"errors"
	"net/http"
)

// Kind tags the error variant. Code and HTTP status derive from it.
type Kind int

const (
	KindBadRequest Kind = iota
	KindConflict
	KindNotFound
	KindValidation
)

// Code returns the machine-readable symbolic code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindValidation:
		return "VALIDATION_ERROR"
	default:
		return "BAD_REQUEST"
	}
}

// Status returns the HTTP status the kind maps to.
func (k Kind) Status() int {
	switch k {
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Error is a tagged application error. Fields is only populated for
// KindValidation and maps a field path to its failure messages.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string { return e.Message }

// Code is the wire code derived from the kind.
func (e *Error) Code() string { return e.Kind.Code() }

// Status is the HTTP status derived from the kind.
func (e *Error) Status() int { return e.Kind.Status() }

func newError(kind Kind, message, fallback string) *Error {
	if message == "" {
		message = fallback
	}
	return &Error{Kind: kind, Message: message}
}

// BadRequest builds a generic 400 error.
func BadRequest(message string) *Error {
	return newError(KindBadRequest, message, "Bad request")
}

// Conflict builds a 409 error for uniqueness violations.
func Conflict(message string) *Error {
	return newError(KindConflict, message, "Resource conflict")
}

// NotFound builds a 404 error for absent entities.
func NotFound(message string) *Error {
	return newError(KindNotFound, message, "Resource not found")
}

// Validation builds a 400 error carrying per-field failure messages.
func Validation(message string, fields map[string][]string) *Error {
	e := newError(KindValidation, message, "Validation failed")
	e.Fields = fields
	return e
}

// As unwraps err into an *Error when it is (or wraps) one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
