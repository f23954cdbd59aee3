package handler

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/donorkit/pkg/validator"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was accessed on a non-Datastar request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError carries a status code and a translation key for the message.
type HTTPError struct {
	Code int
	Key  string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

func (e HTTPError) Error() string {
	return e.Key
}

// StatusCode returns the HTTP status code.
func (e HTTPError) StatusCode() int {
	return e.Code
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "http.error.bad_request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "http.error.not_found")
	ErrMethodNotAllowed    = NewHTTPError(http.StatusMethodNotAllowed, "http.error.method_not_allowed")
	ErrUnsupportedMedia    = NewHTTPError(http.StatusUnsupportedMediaType, "http.error.unsupported_media_type")
	ErrUnprocessableEntity = NewHTTPError(http.StatusUnprocessableEntity, "http.error.unprocessable_entity")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "http.error.internal")
)

// ValidationError maps field names to their error messages.
type ValidationError map[string][]string

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return ValidationError{}
}

// ValidationErrorFrom converts field validation failures. The message func
// may localize each failure; when nil the failure's own message is used.
func ValidationErrorFrom(errs validator.ValidationErrors, message func(validator.ValidationError) string) ValidationError {
	ve := NewValidationError()
	for _, e := range errs {
		msg := e.Message
		if message != nil {
			msg = message(e)
		}
		ve.Add(e.Field, msg)
	}
	return ve
}

func (e ValidationError) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e ValidationError) Get(field string) []string {
	return e[field]
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the failing field names in sorted order.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

func (e ValidationError) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+strings.Join(e[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
