package validator

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of HTML date inputs.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD value as a calendar date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// ValidDate fails when value is not a YYYY-MM-DD calendar date.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ParseDate(value, time.UTC)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid date",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotFutureDate fails when value falls on a day after now.
// Comparison is by calendar day in now's location, so today is accepted.
func NotFutureDate(field string, value time.Time, now time.Time) Rule {
	return notFuture(field, value, now, "Date cannot be in the future", "validation.date_not_future")
}

// NotFutureBirthdate is NotFutureDate with the date-of-birth wording.
func NotFutureBirthdate(field string, value time.Time, now time.Time) Rule {
	return notFuture(field, value, now, "Date of birth cannot be in the future", "validation.dob_not_future")
}

func notFuture(field string, value, now time.Time, message, key string) Rule {
	return Rule{
		Check: func() bool {
			y, m, d := now.Date()
			today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
			vy, vm, vd := value.Date()
			day := time.Date(vy, vm, vd, 0, 0, 0, 0, now.Location())
			return !day.After(today)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
				"today": now.Format(DateLayout),
			},
		},
	}
}
