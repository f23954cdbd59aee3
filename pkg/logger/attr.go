package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors". Returns an empty Attr when
// all are nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// SessionID records the browser session that receives notifications.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// Field records the form field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records the validation kind of a field.
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// ExportFormat records the export target under "format".
func ExportFormat(format string) slog.Attr {
	return slog.String("format", format)
}

// Rows records a row count.
func Rows(n int) slog.Attr {
	return slog.Int("rows", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
