package export

import (
	"fmt"
	"strings"
)

// Format is an export target.
type Format string

const (
	FormatCSV       Format = "csv"
	FormatExcel     Format = "excel"
	FormatClipboard Format = "clipboard"
	FormatPrint     Format = "print"
)

// ParseFormat accepts the format names case-insensitively, plus "xls" for excel.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatExcel, FormatClipboard, FormatPrint:
		return f, nil
	case "xls":
		return FormatExcel, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// MIMEType is the content type of the produced file.
func (f Format) MIMEType() string {
	switch f {
	case FormatCSV:
		return "text/csv;charset=utf-8"
	case FormatExcel:
		return "application/vnd.ms-excel"
	case FormatPrint:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension is the file extension, without a dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatExcel:
		return "xls"
	case FormatPrint:
		return "html"
	default:
		return "txt"
	}
}

// IsDownload reports whether the format is saved as a file rather than
// placed on the clipboard or shown in the browser.
func (f Format) IsDownload() bool {
	return f == FormatCSV || f == FormatExcel
}

// MessageKey is the translation key of the success toast.
func (f Format) MessageKey() string {
	switch f {
	case FormatCSV:
		return "export.csv_done"
	case FormatExcel:
		return "export.excel_done"
	case FormatPrint:
		return "export.print_done"
	default:
		return "export.copied"
	}
}
