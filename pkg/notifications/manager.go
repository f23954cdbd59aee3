package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/donorkit/pkg/logger"
)

// Manager stores notifications and delivers them.
type Manager struct {
	storage   Storage
	deliverer Deliverer
	logger    *slog.Logger
	now       func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithManagerClock sets the time source for CreatedAt and expiry.
func WithManagerClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a manager. A nil storage means a fresh MemoryStorage and
// a nil deliverer means ContextDeliverer.
func NewManager(storage Storage, deliverer Deliverer, opts ...ManagerOption) *Manager {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	if deliverer == nil {
		deliverer = ContextDeliverer{}
	}

	m := &Manager{
		storage:   storage,
		deliverer: deliverer,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send stores notif, assigning an ID and creation time when missing, then
// delivers it. Delivery is best effort: a stored notification is still
// returned by Pending if delivery fails.
func (m *Manager) Send(ctx context.Context, notif Notification) (Notification, error) {
	if notif.ID == "" {
		notif.ID = uuid.NewString()
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = m.now()
	}

	if err := m.storage.Create(ctx, notif); err != nil {
		return Notification{}, fmt.Errorf("failed to store notification: %w", err)
	}

	if err := m.deliverer.Deliver(ctx, notif); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "failed to deliver notification, kept for later",
			logger.NotificationID(notif.ID),
			logger.SessionID(notif.SessionID),
			logger.Error(err),
		)
	}

	return notif, nil
}

// Toast sends a notification of typ to a session that expires after ttl.
func (m *Manager) Toast(ctx context.Context, sessionID string, typ Type, title, message string, ttl time.Duration) (Notification, error) {
	n := New(typ, title, message, ttl, m.now())
	n.SessionID = sessionID
	return m.Send(ctx, n)
}

// Pending lists live notifications of a session, newest first.
func (m *Manager) Pending(ctx context.Context, sessionID string) ([]Notification, error) {
	return m.storage.List(ctx, sessionID, ListOptions{Now: m.now()})
}

func (m *Manager) Dismiss(ctx context.Context, sessionID string, notifIDs ...string) error {
	return m.storage.Dismiss(ctx, sessionID, notifIDs...)
}

// Purge drops expired notifications of every session.
func (m *Manager) Purge(ctx context.Context) (int, error) {
	return m.storage.Purge(ctx, ListOptions{Now: m.now()})
}

func (m *Manager) Storage() Storage {
	return m.storage
}
