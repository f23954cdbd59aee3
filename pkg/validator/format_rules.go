package validator

import (
	"regexp"
	"strings"
)

var (
	// One "@", at least one "." after it, no whitespace anywhere.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigitRegex = regexp.MustCompile(`\D`)
)

// PhoneDigits is the number of digits a phone number must contain once
// every formatting character has been stripped.
const PhoneDigits = 10

// ValidEmail accepts local@domain.tld addresses.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhone strips every non-digit character and requires exactly ten
// digits to remain. Raw digits and the masked "(DDD) DDD-DDDD" form both pass.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(nonDigitRegex.ReplaceAllString(value, "")) == PhoneDigits
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid 10-digit phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field":  field,
				"digits": PhoneDigits,
			},
		},
	}
}
