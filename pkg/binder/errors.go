package binder

import "errors"

var (
	// ErrBinderNotApplicable is returned when a binder does not handle the
	// request's content type. handler.Wrap skips such binders.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)
