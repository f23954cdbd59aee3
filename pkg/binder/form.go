package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory caps the memory used for multipart form parsing.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies into fields tagged with `form:"name"`. Requests with any other
// content type yield ErrBinderNotApplicable.
//
//	type FieldRequest struct {
//		Field    string `form:"field"`
//		Kind     string `form:"kind"`
//		Value    string `form:"value"`
//		Required bool   `form:"required"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values := map[string][]string{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}
			return bindToStruct(v, "form", values, ErrInvalidForm)
		}

		return ErrBinderNotApplicable
	}
}

// Query binds URL query parameters into fields tagged with `query:"name"`.
// It always applies, so place it after body binders.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
