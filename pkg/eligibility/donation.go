package eligibility

import "time"

const (
	// ShelfLifeDays is how long a donated unit stays usable.
	ShelfLifeDays = 42

	// DonationIntervalDays is the minimum gap between two donations.
	DonationIntervalDays = 56
)

// ExpiryDate returns the day a unit donated on donation expires.
func ExpiryDate(donation time.Time) time.Time {
	return donation.AddDate(0, 0, ShelfLifeDays)
}

// NextDonationDate returns the first day a donor may give again.
func NextDonationDate(last time.Time) time.Time {
	return last.AddDate(0, 0, DonationIntervalDays)
}

// CanDonateAgain reports whether enough days have passed since last.
// A zero last means the donor has never given.
func CanDonateAgain(last, now time.Time) bool {
	if last.IsZero() {
		return true
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ny, nm, nd := NextDonationDate(last).Date()
	next := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	return !today.Before(next)
}
