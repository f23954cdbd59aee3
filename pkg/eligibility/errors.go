package eligibility

import "errors"

var (
	// ErrInvalidDate is returned when a date of birth cannot be parsed.
	ErrInvalidDate = errors.New("invalid date of birth")

	// ErrInvalidWindow is returned for windows with Min > Max or negative bounds.
	ErrInvalidWindow = errors.New("invalid eligibility window")
)
