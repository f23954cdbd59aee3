package notifications

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrMissingID            = errors.New("notification ID is required")
	ErrMissingSession       = errors.New("session ID is required")
)

// Storage keeps notifications until they are dismissed or expire.
type Storage interface {
	Create(ctx context.Context, notif Notification) error
	Get(ctx context.Context, sessionID, notifID string) (Notification, error)
	// List returns live notifications for a session, newest first.
	List(ctx context.Context, sessionID string, opts ListOptions) ([]Notification, error)
	// Dismiss removes notifications. Unknown IDs are ignored.
	Dismiss(ctx context.Context, sessionID string, notifIDs ...string) error
	// Purge drops every notification expired at opts.Now and returns how many.
	Purge(ctx context.Context, opts ListOptions) (int, error)
}

// ListOptions filters List and Purge.
type ListOptions struct {
	Limit int
	Types []Type
	// Now is the reference time for expiry. Zero means time.Now.
	Now time.Time
}
