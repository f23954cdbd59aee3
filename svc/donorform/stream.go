package donorform

import (
	"errors"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/datefmt"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
)

// clock streams the live date and time as the clock signal. Plain requests
// receive one snapshot.
func (s *Service) clock(ctx handler.Context, _ struct{}) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSON(datefmt.Now(s.calc.Now()))
	}
	return handler.SSE(func(stream handler.StreamContext) error {
		ticker := time.NewTicker(s.clockInterval)
		defer ticker.Stop()

		for {
			if err := stream.SendSignal("clock", datefmt.Now(s.calc.Now())); err != nil {
				return err
			}
			select {
			case <-stream.Done():
				return nil
			case <-ticker.C:
			}
		}
	})
}

// pendingNotifications replays the live notifications of the session, e.g.
// after a page load.
func (s *Service) pendingNotifications(ctx handler.Context, _ struct{}) handler.Response {
	sid := s.session(ctx)
	pending, err := s.notifier.Pending(ctx, sid)
	if err != nil {
		return handler.Error(err)
	}

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		if pending == nil {
			pending = []notifications.Notification{}
		}
		return handler.JSON(pending)
	}
	// Oldest first so the newest ends up on top of the prepended stack.
	for i := len(pending) - 1; i >= 0; i-- {
		if err := c.Notify(ctx, pending[i]); err != nil {
			return handler.Error(err)
		}
	}
	return handler.Written()
}

func (s *Service) dismissNotification(ctx handler.Context, _ struct{}) handler.Response {
	sid := s.session(ctx)
	err := s.notifier.Dismiss(ctx, sid, chi.URLParam(ctx.Request(), "id"))
	if errors.Is(err, notifications.ErrNotificationNotFound) {
		return handler.Error(handler.ErrNotFound)
	}
	if err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}
