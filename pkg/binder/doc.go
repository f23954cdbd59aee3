// Package binder decodes HTTP request data into typed request structs.
//
// Each binder has the signature func(*http.Request, any) error and is meant
// to be passed to handler.WithBinders. A binder that does not understand the
// request returns ErrBinderNotApplicable and the next binder is tried, so a
// single endpoint can serve Datastar signal posts and classic form
// submissions:
//
//	http.HandleFunc("/dob", handler.Wrap(h,
//		handler.WithBinders[handler.Context, DOBRequest](
//			binder.Signals(),
//			binder.Form(),
//			binder.JSON(),
//		),
//	))
//
// Available binders:
//
//   - Signals: Datastar signal store (JSON body or `datastar` query parameter)
//   - Form: urlencoded and multipart form values, `form:"name"` tags
//   - JSON: application/json bodies, `json:"name"` tags
//   - Query: URL query parameters, `query:"name"` tags
//
// Form and Query accept string, integer, float, bool (including checkbox
// "on") fields, pointers to those and slices for repeated keys.
package binder
