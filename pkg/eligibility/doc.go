// Package eligibility computes donor age and whether that age falls inside
// the donation window (18-65 by default).
//
// Age is the calendar year difference, reduced by one when the birthday has
// not yet occurred this year:
//
//	res := eligibility.Compute(dob, now, eligibility.DefaultWindow)
//	if !res.Eligible {
//	    banner := eligibility.Advisory(res, eligibility.DefaultWindow)
//	}
//
// Calculator binds a Clock and a Window so callers that need a pinned time
// source can inject one:
//
//	calc := eligibility.New(eligibility.WithClock(eligibility.FixedClock(now)))
//	res, err := calc.ComputeString("2000-06-01")
//
// The package also carries the donation schedule: units expire after
// ShelfLifeDays and donors wait DonationIntervalDays between donations.
// Results are never cached.
package eligibility
