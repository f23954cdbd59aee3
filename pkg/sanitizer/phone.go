package sanitizer

// MaxPhoneDigits is the number of digits kept by the phone mask.
const MaxPhoneDigits = 10

// PhoneDigits strips every non-digit character.
func PhoneDigits(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// FormatPhone applies the "(DDD) DDD-DDDD" display mask to partially typed
// input. Non-digits are stripped and the result is truncated to ten digits:
//
//	"555"        -> "555"
//	"5551"       -> "(555) 1"
//	"5551234"    -> "(555) 123-4"
//	"5551234567" -> "(555) 123-4567"
//
// Re-applying FormatPhone to its own output returns the same string.
func FormatPhone(partial string) string {
	digits := PhoneDigits(partial)
	if len(digits) > MaxPhoneDigits {
		digits = digits[:MaxPhoneDigits]
	}

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}
