package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response. Errors passed as v are rendered like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error, r.status = errorToDetail(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	r.body.Error, r.status = errorToDetail(err)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error) (*ErrorDetail, int) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return validationDetail(ve), http.StatusUnprocessableEntity
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return validationDetail(ValidationErrorFrom(fieldErrs, nil)), http.StatusUnprocessableEntity
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}, httpErr.Code
	}

	return &ErrorDetail{Code: "internal_error", Message: err.Error()}, http.StatusInternalServerError
}

func validationDetail(ve ValidationError) *ErrorDetail {
	detail := &ErrorDetail{Code: "validation_error", Message: "validation failed"}
	if len(ve) > 0 {
		detail.Details = make(map[string][]string, len(ve))
		maps.Copy(detail.Details, ve)
	}
	return detail
}
