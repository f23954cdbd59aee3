package export

import (
	"strings"
	"time"

	"github.com/dmitrymomot/donorkit/pkg/datefmt"
	"github.com/dmitrymomot/donorkit/pkg/sanitizer"
)

// DefaultFilename is used when no base name is given.
const DefaultFilename = "export"

// Filename builds "base_YYYY-MM-DD.ext" for the UTC date of now. The base is
// made safe for a Content-Disposition header.
func Filename(base, ext string, now time.Time) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultFilename
	}
	return sanitizer.SanitizeFilename(base + "_" + datefmt.ISO(now.UTC()) + "." + strings.TrimPrefix(ext, "."))
}
