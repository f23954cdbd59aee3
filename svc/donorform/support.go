package donorform

import (
	"context"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/i18n"
	"github.com/dmitrymomot/donorkit/pkg/logger"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// localizer resolves messages in the locale of ctx.
func (s *Service) localizer(ctx context.Context) chrome.Localizer {
	if s.translator == nil {
		return func(_, fallback string, _ map[string]any) string { return fallback }
	}
	lang := i18n.GetLocale(ctx)
	return func(key, fallback string, values map[string]any) string {
		return s.translator.Message(lang, key, fallback, values)
	}
}

func (s *Service) text(ctx context.Context, key, fallback string, values map[string]any) string {
	return s.localizer(ctx)(key, fallback, values)
}

// translateKey feeds HTTPError keys to the error handler.
func (s *Service) translateKey(ctx context.Context, key string) string {
	if s.translator == nil {
		return key
	}
	return s.translator.T(i18n.GetLocale(ctx), key)
}

// localizeResult replaces the English message of a failed result.
func (s *Service) localizeResult(ctx context.Context, res validator.Result) validator.Result {
	if !res.Valid {
		res.Message = s.text(ctx, res.TranslationKey, res.Message, res.TranslationValues)
	}
	return res
}

// session returns the browser session id. It must run before the SSE stream
// is opened because it may set a cookie.
func (s *Service) session(ctx handler.Context) string {
	return s.cookies.SessionID(ctx.ResponseWriter(), ctx.Request())
}

// chromeFor opens the Datastar stream of the request and returns a chrome
// writing to it. ok is false for plain requests, which get no stream.
func (s *Service) chromeFor(ctx handler.Context) (c *chrome.SSEChrome, ok bool, err error) {
	if !handler.IsDataStar(ctx.Request()) {
		return nil, false, nil
	}
	stream, err := handler.NewStreamContext(ctx)
	if err != nil {
		return nil, true, err
	}
	c = chrome.NewSSEChrome(stream,
		chrome.WithWindow(s.calc.Window()),
		chrome.WithLocalizer(s.localizer(ctx)),
		chrome.WithStyles(s.styles),
		chrome.WithIDGenerator(s.newID),
	)
	if err := c.EnsureStyles(ctx); err != nil {
		return nil, true, err
	}
	return c, true, nil
}

// toast stores a notification for the session and, when c is not nil,
// delivers it through the open stream. Storage failures are logged, not returned: the
// interaction itself already succeeded.
func (s *Service) toast(ctx context.Context, c *chrome.SSEChrome, sessionID string, typ notifications.Type, titleKey, messageKey, fallback string) {
	title := ""
	if titleKey != "" {
		title = s.text(ctx, titleKey, "", nil)
	}
	message := s.text(ctx, messageKey, fallback, nil)

	if c != nil {
		ctx = notifications.WithDeliverer(ctx, c)
	}
	if _, err := s.notifier.Toast(ctx, sessionID, typ, title, message, notifications.ToastTTL); err != nil {
		s.log.WarnContext(ctx, "failed to send toast",
			logger.Component("donorform"),
			logger.SessionID(sessionID),
			logger.Error(err),
		)
	}
}
