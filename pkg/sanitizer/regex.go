package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email local part
	dotRegex = regexp.MustCompile(`\.+`)

	// ASCII digits only, matching the \D class of HTML input masks
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Filename sanitization
	unsafeFilenameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)
