package export

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/donorkit/pkg/datefmt"
)

const documentStyle = `body { font-family: Arial, sans-serif; margin: 20px; }
h2 { color: #e53935; }
table { border-collapse: collapse; width: 100%; }
th { background: #e53935; color: white; padding: 10px; }
td { padding: 8px; border: 1px solid #ddd; }
tr:nth-child(even) { background: #f9f9f9; }`

const printStyle = `@media print { .no-print { display: none; } body { margin: 0; } }`

var upper = cases.Upper(language.English)

// HeaderLabel turns a column name into a table heading: underscores become
// spaces and letters are upper-cased.
func HeaderLabel(column string) string {
	return upper.String(strings.ReplaceAll(column, "_", " "))
}

// Document describes a self-contained HTML export.
type Document struct {
	Title     string
	Generated time.Time
	Table     Table
	// Print adds print styles and opens the print dialog on load.
	Print bool
}

// HTMLDocument renders doc. All text is HTML-escaped.
func HTMLDocument(doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		title := templ.EscapeString(doc.Title)

		b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
		b.WriteString(title)
		b.WriteString("</title>\n<style>\n")
		b.WriteString(documentStyle)
		if doc.Print {
			b.WriteString("\n")
			b.WriteString(printStyle)
		}
		b.WriteString("\n</style>\n</head>\n")
		if doc.Print {
			b.WriteString("<body onload=\"window.print()\">\n")
		} else {
			b.WriteString("<body>\n")
		}

		b.WriteString("<h2>")
		b.WriteString(title)
		b.WriteString("</h2>\n<p>Generated on: ")
		b.WriteString(templ.EscapeString(datefmt.Generated(doc.Generated)))
		b.WriteString("</p>\n")

		writeTable(&b, doc.Table)

		b.WriteString("<p><strong>Total Records:</strong> ")
		b.WriteString(strconv.Itoa(len(doc.Table)))
		b.WriteString("</p>\n</body>\n</html>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeTable(b *strings.Builder, t Table) {
	columns := t.Columns()

	b.WriteString("<table>\n<thead>\n<tr>")
	for _, col := range columns {
		b.WriteString("<th>")
		b.WriteString(templ.EscapeString(HeaderLabel(col)))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, rec := range t {
		b.WriteString("<tr>")
		for _, col := range columns {
			b.WriteString("<td>")
			b.WriteString(templ.EscapeString(rec.Value(col)))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func render(doc Document) (string, error) {
	if len(doc.Table) == 0 {
		return "", ErrNoData
	}

	var buf bytes.Buffer
	if err := HTMLDocument(doc).Render(context.Background(), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToHTMLTable renders the table as a standalone HTML document that
// spreadsheet applications open as a worksheet.
func ToHTMLTable(t Table, title string, generated time.Time) (string, error) {
	return render(Document{Title: title, Generated: generated, Table: t})
}

// ToPrintHTML renders the print view: the same document with print styles,
// opening the browser print dialog so it can be saved as PDF.
func ToPrintHTML(t Table, title string, generated time.Time) (string, error) {
	return render(Document{Title: title, Generated: generated, Table: t, Print: true})
}
