// Package datefmt renders dates and times in the fixed en-US forms used by
// the donor forms: the long date under date inputs, the live clock and the
// export timestamp.
package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// ISODate is the wire form of every date input.
	ISODate = "2006-01-02"
	// LongDate matches "Monday, January 2, 2006".
	LongDate = "Monday, January 2, 2006"
	// ClockTime is a 24-hour clock with seconds.
	ClockTime = "15:04:05"
	// Stamp is the "Generated on" line of exports.
	Stamp = "1/2/2006, 3:04:05 PM"
)

var ErrInvalidDate = errors.New("invalid date")

// Long formats t as a long date.
func Long(t time.Time) string {
	return t.Format(LongDate)
}

// Clock formats t as a 24-hour time.
func Clock(t time.Time) string {
	return t.Format(ClockTime)
}

// Generated formats t as an export timestamp.
func Generated(t time.Time) string {
	return t.Format(Stamp)
}

// ISO formats t as YYYY-MM-DD.
func ISO(t time.Time) string {
	return t.Format(ISODate)
}

// Parse reads a YYYY-MM-DD value at midnight in loc (UTC when nil).
func Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(ISODate, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// Helper returns the long form of a YYYY-MM-DD input value, or "" when the
// value is empty or not a date. Used for the hint shown under date inputs.
func Helper(value string) string {
	t, err := Parse(value, time.UTC)
	if err != nil {
		return ""
	}
	return Long(t)
}

// Live is the pair of strings shown by the live clock widgets.
type Live struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Now snapshots the live clock strings for t.
func Now(t time.Time) Live {
	return Live{Date: Long(t), Time: Clock(t)}
}
