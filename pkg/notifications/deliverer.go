package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/donorkit/pkg/logger"
)

// Deliverer shows a notification to its session right away.
type Deliverer interface {
	Deliver(ctx context.Context, notif Notification) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, notif Notification) error

func (f DelivererFunc) Deliver(ctx context.Context, notif Notification) error {
	return f(ctx, notif)
}

type delivererKey struct{}

// WithDeliverer binds a request-scoped deliverer, such as the open SSE
// stream of the request, to ctx.
func WithDeliverer(ctx context.Context, d Deliverer) context.Context {
	return context.WithValue(ctx, delivererKey{}, d)
}

// DelivererFromContext returns the deliverer bound with WithDeliverer.
func DelivererFromContext(ctx context.Context) (Deliverer, bool) {
	d, ok := ctx.Value(delivererKey{}).(Deliverer)
	return d, ok && d != nil
}

// ContextDeliverer delivers through the deliverer bound to the context and
// does nothing when none is bound.
type ContextDeliverer struct{}

func (ContextDeliverer) Deliver(ctx context.Context, notif Notification) error {
	if d, ok := DelivererFromContext(ctx); ok {
		return d.Deliver(ctx, notif)
	}
	return nil
}

// MultiDeliverer fans out to several deliverers. Failures are logged and do
// not stop the others.
type MultiDeliverer struct {
	deliverers []Deliverer
	logger     *slog.Logger
}

// MultiDelivererOption configures a MultiDeliverer.
type MultiDelivererOption func(*MultiDeliverer)

func WithMultiDelivererLogger(l *slog.Logger) MultiDelivererOption {
	return func(m *MultiDeliverer) {
		if l != nil {
			m.logger = l
		}
	}
}

func NewMultiDeliverer(deliverers []Deliverer, opts ...MultiDelivererOption) *MultiDeliverer {
	m := &MultiDeliverer{
		deliverers: deliverers,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MultiDeliverer) Deliver(ctx context.Context, notif Notification) error {
	for i, d := range m.deliverers {
		if err := d.Deliver(ctx, notif); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
				logger.NotificationID(notif.ID),
				logger.SessionID(notif.SessionID),
				slog.Int("deliverer_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}

// NoOpDeliverer drops every notification.
type NoOpDeliverer struct{}

func (NoOpDeliverer) Deliver(context.Context, Notification) error {
	return nil
}
