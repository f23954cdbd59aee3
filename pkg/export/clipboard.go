package export

import "strings"

// ToClipboardText renders the table as tab-separated text for pasting into a
// spreadsheet. headers overrides the column order of the first record.
// Every line, the header included, ends with "\n"; missing cells are empty.
func ToClipboardText(t Table, headers ...string) (string, error) {
	if len(t) == 0 {
		return "", ErrNoData
	}

	columns := headers
	if len(columns) == 0 {
		columns = t.Columns()
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, "\t"))
	b.WriteByte('\n')

	cells := make([]string, len(columns))
	for _, rec := range t {
		for i, col := range columns {
			cells[i] = rec.Value(col)
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteByte('\n')
	}

	return b.String(), nil
}
