package eligibility

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of HTML date inputs.
const DateLayout = "2006-01-02"

// Window is the inclusive age range permitted to donate.
type Window struct {
	Min int
	Max int
}

// DefaultWindow is the 18-65 donation window.
var DefaultWindow = Window{Min: 18, Max: 65}

// Validate reports ErrInvalidWindow for negative or inverted bounds.
func (w Window) Validate() error {
	if w.Min < 0 || w.Max < w.Min {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidWindow, w.Min, w.Max)
	}
	return nil
}

// Contains reports whether age lies inside the window, bounds included.
func (w Window) Contains(age int) bool {
	return age >= w.Min && age <= w.Max
}

// Reason explains an eligibility outcome.
type Reason string

const (
	ReasonEligible Reason = "eligible"
	ReasonTooYoung Reason = "too-young"
	ReasonTooOld   Reason = "too-old"
)

// Result is the derived age and eligibility for one date of birth.
type Result struct {
	Age      int
	Eligible bool
	Reason   Reason
}

// Age returns completed years between dob and now. The year difference is
// reduced by one when (now.Month, now.Day) is lexicographically before
// (dob.Month, dob.Day). Ages below zero are clamped to zero.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// Compute derives age and eligibility for dob relative to now.
func Compute(dob, now time.Time, w Window) Result {
	age := Age(dob, now)
	res := Result{Age: age, Eligible: w.Contains(age), Reason: ReasonEligible}
	switch {
	case age < w.Min:
		res.Reason = ReasonTooYoung
	case age > w.Max:
		res.Reason = ReasonTooOld
	}
	return res
}

// ParseDOB parses a YYYY-MM-DD date of birth in loc.
func ParseDOB(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	dob, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return dob, nil
}

// Advisory returns the banner text shown for an ineligible result, or an
// empty string when the donor is eligible.
func Advisory(res Result, w Window) string {
	switch res.Reason {
	case ReasonTooYoung:
		return fmt.Sprintf("Age %d: Too young to donate. Minimum age is %d years.", res.Age, w.Min)
	case ReasonTooOld:
		return fmt.Sprintf("Age %d: Too old to donate. Maximum age is %d years.", res.Age, w.Max)
	default:
		return ""
	}
}

// Summary is the one-line status shown under the date of birth input.
func Summary(res Result, w Window) string {
	if res.Eligible {
		return "Eligible to donate"
	}
	return fmt.Sprintf("Not eligible (must be %d-%d years)", w.Min, w.Max)
}

// DOBBounds returns the earliest and latest dates of birth that fall inside
// the window on now's calendar day. They back the date picker min/max.
func DOBBounds(now time.Time, w Window) (earliest, latest time.Time) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return today.AddDate(-w.Max, 0, 0), today.AddDate(-w.Min, 0, 0)
}
