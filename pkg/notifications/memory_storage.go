package notifications

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStorage keeps notifications in process memory, keyed by session.
type MemoryStorage struct {
	notifications map[string][]Notification
	mu            sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		notifications: make(map[string][]Notification),
	}
}

func (s *MemoryStorage) Create(_ context.Context, notif Notification) error {
	if notif.ID == "" {
		return ErrMissingID
	}
	if notif.SessionID == "" {
		return ErrMissingSession
	}
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications[notif.SessionID] = append(s.notifications[notif.SessionID], notif)
	return nil
}

func (s *MemoryStorage) Get(_ context.Context, sessionID, notifID string) (Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications[sessionID] {
		if n.ID == notifID {
			return n, nil
		}
	}
	return Notification{}, ErrNotificationNotFound
}

func (s *MemoryStorage) List(_ context.Context, sessionID string, opts ListOptions) ([]Notification, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Notification
	for _, n := range s.notifications[sessionID] {
		if n.ExpiredAt(now) {
			continue
		}
		if len(opts.Types) > 0 && !slices.Contains(opts.Types, n.Type) {
			continue
		}
		out = append(out, n)
	}

	slices.SortStableFunc(out, func(a, b Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *MemoryStorage) Dismiss(_ context.Context, sessionID string, notifIDs ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := slices.DeleteFunc(s.notifications[sessionID], func(n Notification) bool {
		return slices.Contains(notifIDs, n.ID)
	})
	if len(kept) == 0 {
		delete(s.notifications, sessionID)
		return nil
	}
	s.notifications[sessionID] = kept
	return nil
}

func (s *MemoryStorage) Purge(_ context.Context, opts ListOptions) (int, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for session, list := range s.notifications {
		before := len(list)
		list = slices.DeleteFunc(list, func(n Notification) bool { return n.ExpiredAt(now) })
		purged += before - len(list)
		if len(list) == 0 {
			delete(s.notifications, session)
		} else {
			s.notifications[session] = list
		}
	}
	return purged, nil
}
