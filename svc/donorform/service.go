package donorform

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/binder"
	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/cookie"
	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/i18n"
	"github.com/dmitrymomot/donorkit/pkg/logger"
	"github.com/dmitrymomot/donorkit/pkg/metrics"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
)

// DefaultClockInterval is the tick of the live clock stream.
const DefaultClockInterval = time.Second

// Service wires browser events of the donor forms to the validators, the
// eligibility calculator and the export formatter, and answers with chrome
// patches for Datastar requests or plain HTML/JSON otherwise.
type Service struct {
	calc          *eligibility.Calculator
	translator    *i18n.Translator
	metrics       *metrics.Metrics
	notifier      *notifications.Manager
	cookies       *cookie.Manager
	styles        *chrome.Styles
	log           *slog.Logger
	errorHandler  handler.ErrorHandler[handler.Context]
	clockInterval time.Duration
	newID         func() string
}

// Option configures a Service.
type Option func(*Service)

// WithCalculator sets the eligibility calculator, and with it the clock used
// for every "today" comparison.
func WithCalculator(c *eligibility.Calculator) Option {
	return func(s *Service) {
		if c != nil {
			s.calc = c
		}
	}
}

// WithTranslator localizes messages by the request locale. Without it the
// built-in English texts are used.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *Service) {
		s.translator = t
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithNotifications sets the manager storing toasts per browser session.
func WithNotifications(m *notifications.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.notifier = m
		}
	}
}

// WithCookies sets the manager issuing the session cookie.
func WithCookies(c *cookie.Manager) Option {
	return func(s *Service) {
		if c != nil {
			s.cookies = c
		}
	}
}

func WithStyles(st *chrome.Styles) Option {
	return func(s *Service) {
		if st != nil {
			s.styles = st
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorHandler replaces the default toast/page error handler.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func WithClockInterval(d time.Duration) Option {
	if d <= 0 {
		panic("WithClockInterval: interval must be > 0")
	}
	return func(s *Service) {
		s.clockInterval = d
	}
}

// WithIDGenerator overrides the generator of banner and toast ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New creates the service. Without WithCookies a manager with a random
// secret is created, so sessions do not survive a restart.
func New(opts ...Option) *Service {
	s := &Service{
		calc:          eligibility.New(),
		styles:        chrome.NewStyles(),
		log:           logger.Discard(),
		clockInterval: DefaultClockInterval,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.notifier == nil {
		s.notifier = notifications.NewManager(nil, nil,
			notifications.WithManagerLogger(s.log),
			notifications.WithManagerClock(s.calc.Now),
		)
	}
	if s.cookies == nil {
		c, err := cookie.New([]string{uuid.NewString() + uuid.NewString()})
		if err != nil {
			panic("donorform: " + err.Error())
		}
		s.cookies = c
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:   chrome.ErrorPage,
			ErrorToast:  chrome.ErrorToast,
			ToastTarget: "#" + chrome.ToastContainerID,
			Translate:   s.translateKey,
		})
	}
	return s
}

// Handle returns the router of the form endpoints, to be mounted by the
// application.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/fields/validate", wrap(s, "validate_field", s.validateField, binder.Signals(), binder.Form()))
	r.Post("/forms/validate", wrap(s, "validate_form", s.validateForm, binder.Signals(), binder.JSON()))

	r.Post("/dob", wrap(s, "date_of_birth", s.dateOfBirth, binder.Signals(), binder.Form()))
	r.Get("/dob/bounds", wrap(s, "dob_bounds", s.dobBounds))
	r.Post("/date-helper", wrap(s, "date_helper", s.dateHelper, binder.Signals(), binder.Form()))
	r.Post("/phone", wrap(s, "phone", s.phone, binder.Signals(), binder.Form()))

	r.Get("/donation-info", wrap(s, "donation_info", s.donationInfo))
	r.Post("/donations/schedule", wrap(s, "donation_schedule", s.donationSchedule, binder.Signals(), binder.Form()))

	r.Post("/exports/{format}", wrap(s, "export", s.export, binder.Signals(), binder.JSON()))
	r.Post("/search", wrap(s, "search", s.search, binder.Signals(), binder.JSON()))

	r.Get("/clock", wrap(s, "clock", s.clock))

	r.Get("/notifications", wrap(s, "pending_notifications", s.pendingNotifications))
	r.Delete("/notifications/{id}", wrap(s, "dismiss_notification", s.dismissNotification))

	r.Get("/modals/donation-info", wrap(s, "donation_info_modal", s.donationInfoModal))
	r.Delete("/modals", wrap(s, "close_modal", s.closeModal))

	return r
}

// Purge drops expired notifications of every session.
func (s *Service) Purge(ctx context.Context) (int, error) {
	return s.notifier.Purge(ctx)
}

func wrap[R any](s *Service, name string, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
		handler.WithDecorators(handler.Logged[handler.Context, R](s.log, name)),
	)
}
