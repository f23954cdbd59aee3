package sanitizer

import "strings"

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims whitespace and lowercases, for case-insensitive matching.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// KeepDigits keeps only ASCII digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses runs of spaces, tabs and newlines into one space.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
