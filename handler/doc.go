// Package handler provides type-safe HTTP handlers whose responses adapt to
// Datastar.
//
// A HandlerFunc receives a Context and a request struct populated by the
// configured binders, and returns a Response:
//
//	func (s *Service) formatPhone(ctx handler.Context, req PhoneRequest) handler.Response {
//		return handler.JSON(map[string]string{"phone": sanitizer.FormatPhone(req.Phone)})
//	}
//
//	r.Post("/phone", handler.Wrap(s.formatPhone,
//		handler.WithBinders[handler.Context, PhoneRequest](binder.Signals(), binder.Form()),
//	))
//
// # Responses
//
//   - Templ, TemplMulti, TemplWithStatus: templ components, sent as Datastar
//     element patches for Datastar requests and as HTML otherwise
//   - JSON, JSONError: JSON envelopes with validation details
//   - Download, Inline: file bodies with Content-Disposition
//   - SSE: long-lived streams driven through StreamContext
//   - Empty, EmptyWithStatus, Written: bodiless responses
//
// # Datastar
//
// IsDataStar detects requests issued by the Datastar client. Context.SSE opens
// the event stream lazily and responses rendered afterwards reuse it.
//
// # Errors
//
// HTTPError carries a status code and a translation key. ValidationError maps
// fields to messages and can be built from validator.ValidationErrors.
// NewErrorHandler logs the failure and answers with an error page or, for
// Datastar requests, a toast patch.
package handler
