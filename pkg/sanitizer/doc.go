// Package sanitizer normalises and formats user input for display.
//
// The central helper is FormatPhone, the incremental "(DDD) DDD-DDDD" mask
// applied while a phone number is typed. It is idempotent, so the mask can be
// re-applied on every keystroke to its own output.
//
// Transformations are plain string functions and can be chained with Apply
// or stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWhitespace)
//	name := clean(input)
package sanitizer
