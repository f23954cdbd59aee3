package notifications

import (
	"time"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Display lifetimes of the transient messages.
const (
	ToastTTL  = 3 * time.Second
	BannerTTL = 5 * time.Second
)

// Icon is the icon name shown next to the message.
func (t Type) Icon() string {
	switch t {
	case TypeSuccess:
		return "check-circle"
	case TypeError:
		return "exclamation-circle"
	case TypeWarning:
		return "exclamation-triangle"
	default:
		return "info-circle"
	}
}

// Notification is a transient message shown to one browser session.
type Notification struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	Type      Type       `json:"type"`
	Title     string     `json:"title,omitempty"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// New builds a notification that expires ttl after now. A zero ttl never
// expires.
func New(typ Type, title, message string, ttl time.Duration, now time.Time) Notification {
	n := Notification{
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: now,
	}
	if ttl > 0 {
		exp := now.Add(ttl)
		n.ExpiresAt = &exp
	}
	return n
}

// TTL is the remaining display time from CreatedAt, 0 when it never expires.
func (n Notification) TTL() time.Duration {
	if n.ExpiresAt == nil {
		return 0
	}
	return n.ExpiresAt.Sub(n.CreatedAt)
}

// ExpiredAt reports whether the notification has expired at now.
func (n Notification) ExpiredAt(now time.Time) bool {
	return n.ExpiresAt != nil && !now.Before(*n.ExpiresAt)
}
