package export

import (
	"strings"

	"github.com/dmitrymomot/donorkit/pkg/sanitizer"
)

// searchKey folds case and whitespace runs so "ada  LOVELACE" finds
// "Ada Lovelace".
var searchKey = sanitizer.Compose(sanitizer.NormalizeWhitespace, strings.ToLower)

// Filter keeps the records whose row text contains term, ignoring case and
// whitespace runs. A blank term keeps every record.
func Filter(t Table, term string) Table {
	needle := searchKey(term)
	if needle == "" {
		return t
	}

	out := make(Table, 0, len(t))
	for _, rec := range t {
		if strings.Contains(searchKey(rec.Text()), needle) {
			out = append(out, rec)
		}
	}
	return out
}
