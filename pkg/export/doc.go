// Package export renders tables of records as CSV, Excel-compatible HTML,
// a printable HTML view and tab-separated clipboard text.
//
// A Table is a list of Records. Each Record keeps its columns in insertion
// order, including when decoded from JSON, and the column order of a table
// is the key order of its first record.
//
//	t := export.Table{export.NewRecord("Name", "A, B", "Age", "30")}
//	csv, _ := export.ToCSV(t) // "Name,Age\n\"A, B\",30"
//
// Every renderer returns ErrNoData for an empty table.
package export
