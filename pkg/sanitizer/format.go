package sanitizer

import "strings"

// NormalizeEmail lowercases and trims an address, consolidating consecutive
// dots in the local part. Input without exactly one "@" is only trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// SanitizeFilename replaces filesystem-unsafe characters so the name can be
// used in a Content-Disposition header and saved on any platform.
func SanitizeFilename(filename string) string {
	safe := unsafeFilenameRegex.ReplaceAllString(filename, "_")
	safe = strings.Trim(safe, " .")

	if len(safe) > 255 {
		safe = safe[:255]
	}

	if safe == "" {
		safe = "export"
	}

	return safe
}
