package validator

import "errors"

var (
	// ErrUnknownKind is returned when a field kind tag is not recognised.
	ErrUnknownKind = errors.New("unknown field kind")

	// ErrInvalidDate is returned when a date value is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")
)
