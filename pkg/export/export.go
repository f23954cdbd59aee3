package export

import (
	"time"
)

// Options describe one export request.
type Options struct {
	// Filename is the base name, dated and given an extension by Filename.
	Filename string
	// Title heads the HTML and print documents.
	Title string
	// Headers overrides the column order of clipboard text.
	Headers []string
	Now     time.Time
}

// Payload is a rendered export ready to be delivered.
type Payload struct {
	Format   Format
	Body     []byte
	MIMEType string
	Filename string
	Rows     int
}

// Render produces the export of t in format f. An empty table yields
// ErrNoData for every format.
func Render(f Format, t Table, opts Options) (Payload, error) {
	if opts.Title == "" {
		opts.Title = "Data Export"
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var (
		body []byte
		s    string
		err  error
	)
	switch f {
	case FormatCSV:
		body, err = CSVBytes(t)
	case FormatExcel:
		s, err = ToHTMLTable(t, opts.Title, opts.Now)
		body = []byte(s)
	case FormatPrint:
		s, err = ToPrintHTML(t, opts.Title, opts.Now)
		body = []byte(s)
	case FormatClipboard:
		s, err = ToClipboardText(t, opts.Headers...)
		body = []byte(s)
	default:
		return Payload{}, ErrUnknownFormat
	}
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		Format:   f,
		Body:     body,
		MIMEType: f.MIMEType(),
		Filename: Filename(opts.Filename, f.Extension(), opts.Now),
		Rows:     len(t),
	}, nil
}
