package export

import (
	"strings"
)

// utf8BOM makes spreadsheet applications detect UTF-8.
const utf8BOM = "\uFEFF"

// ToCSV renders the table as comma-separated text. The header row is the
// column order of the first record; every row follows it, missing cells
// render empty. A cell containing a comma is wrapped in double quotes with
// inner quotes doubled; other cells are written verbatim. Rows are joined by
// "\n" with no trailing newline.
func ToCSV(t Table) (string, error) {
	if len(t) == 0 {
		return "", ErrNoData
	}

	columns := t.Columns()
	lines := make([]string, 0, len(t)+1)
	lines = append(lines, strings.Join(columns, ","))

	cells := make([]string, len(columns))
	for _, rec := range t {
		for i, col := range columns {
			cells[i] = csvCell(rec.Value(col))
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n"), nil
}

// CSVBytes is ToCSV prefixed with a UTF-8 byte order mark, the form served
// as a download.
func CSVBytes(t Table) ([]byte, error) {
	s, err := ToCSV(t)
	if err != nil {
		return nil, err
	}
	return []byte(utf8BOM + s), nil
}

func csvCell(v string) string {
	if !strings.Contains(v, ",") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
