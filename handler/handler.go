package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/donorkit/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
//
//	h := handler.HandlerFunc[handler.Context, PhoneRequest](
//		func(ctx handler.Context, req PhoneRequest) handler.Response {
//			return handler.JSON(map[string]string{"phone": sanitizer.FormatPhone(req.Phone)})
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response writes itself to the client. A returned error goes to the
// ErrorHandler of the wrapped route, unless the response was already written.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes part of a request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports binding and rendering failures to the client.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator given to WithDecorators
// is the outermost one.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*route[C, R])

type route[C Context, R any] struct {
	binders    []Bind
	onError    ErrorHandler[C]
	newContext func(http.ResponseWriter, *http.Request) C
	decorators []Decorator[C, R]
}

// WithBinder sets a single request binder, replacing any set before.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if b != nil {
			rt.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders that are applied in order. Binders returning
// binder.ErrBinderNotApplicable are skipped.
//
//	handler.WithBinders[handler.Context, FieldRequest](binder.Signals(), binder.Form())
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.binders = append(rt.binders, binders...)
	}
}

// WithErrorHandler replaces the plain-text default error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

// WithContextFactory is required when C is not the built-in Context.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if f != nil {
			rt.newContext = f
		}
	}
}

// WithDecorators appends decorators around the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.decorators = append(rt.decorators, decorators...)
	}
}

func plainError[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

func defaultContext[C Context](w http.ResponseWriter, r *http.Request) C {
	c, ok := any(NewContext(w, r)).(C)
	if !ok {
		panic("handler: custom context type needs WithContextFactory")
	}
	return c
}

// Wrap turns a typed handler into an http.HandlerFunc: it binds the request,
// runs the decorated handler and renders its response.
//
//	r.Post("/phone", handler.Wrap(s.formatPhone,
//		handler.WithBinders[handler.Context, PhoneRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, PhoneRequest](s.errorHandler),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	rt := &route[C, R]{
		onError:    plainError[C],
		newContext: defaultContext[C],
	}
	for _, opt := range opts {
		opt(rt)
	}

	for i := len(rt.decorators) - 1; i >= 0; i-- {
		h = rt.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := rt.newContext(w, r)

		req, err := rt.bind(r)
		if err != nil {
			rt.onError(ctx, errors.Join(ErrBadRequest, err))
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			rt.onError(ctx, ErrNilResponse)
			return
		}
		// ctx.Request() carries the SSE stream if the handler opened one.
		if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
			rt.onError(ctx, err)
		}
	}
}

func (rt *route[C, R]) bind(r *http.Request) (R, error) {
	var req R
	for _, b := range rt.binders {
		if err := b(r, &req); err != nil && !errors.Is(err, binder.ErrBinderNotApplicable) {
			return req, err
		}
	}
	return req, nil
}
