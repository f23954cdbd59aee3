// Command donorkit serves the interaction endpoints of the donor registry
// forms: field validation, age eligibility, phone masking, date helpers,
// exports and notifications.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/config"
	"github.com/dmitrymomot/donorkit/pkg/cookie"
	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/environment"
	"github.com/dmitrymomot/donorkit/pkg/httpserver"
	"github.com/dmitrymomot/donorkit/pkg/i18n"
	"github.com/dmitrymomot/donorkit/pkg/logger"
	"github.com/dmitrymomot/donorkit/pkg/metrics"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/requestid"
	"github.com/dmitrymomot/donorkit/svc/donorform"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"donorkit"`

	MinAge int `env:"ELIGIBILITY_MIN_AGE" envDefault:"18"`
	MaxAge int `env:"ELIGIBILITY_MAX_AGE" envDefault:"65"`

	Languages       []string `env:"I18N_LANGUAGES" envDefault:"en,es" envSeparator:","`
	DefaultLanguage string   `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`

	PurgeInterval time.Duration `env:"NOTIFICATIONS_PURGE_INTERVAL" envDefault:"1m"`

	HTTP   httpserver.Config
	Cookie cookie.Config
}

// Window returns the configured eligibility age window.
func (c Config) Window() (eligibility.Window, error) {
	w := eligibility.Window{Min: c.MinAge, Max: c.MaxAge}
	if err := w.Validate(); err != nil {
		return eligibility.Window{}, fmt.Errorf("ELIGIBILITY_MIN_AGE/ELIGIBILITY_MAX_AGE: %w", err)
	}
	return w, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	window, err := cfg.Window()
	if err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LogExtractor(), environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	translator, err := i18n.NewDefaultTranslator(ctx,
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	cookies, err := newCookies(cfg.Cookie, env, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	calc := eligibility.New(eligibility.WithWindow(window))
	notifier := notifications.NewManager(notifications.NewMemoryStorage(), nil,
		notifications.WithManagerLogger(log),
		notifications.WithManagerClock(calc.Now),
	)

	forms := donorform.New(
		donorform.WithCalculator(calc),
		donorform.WithTranslator(translator),
		donorform.WithMetrics(m),
		donorform.WithNotifications(notifier),
		donorform.WithCookies(cookies),
		donorform.WithStyles(chrome.NewStyles()),
		donorform.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(env),
		i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(cfg.Languages...))),
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if len(translator.SupportedLanguages()) == 0 {
			return errors.New("no translations loaded")
		}
		return nil
	}))
	r.Handle("/metrics", m.Handler())
	r.Mount("/forms", forms.Handle())

	go purge(ctx, forms, cfg.PurgeInterval, log)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

// newCookies builds the session cookie manager. Outside production a missing
// secret is replaced by a random one, which invalidates sessions on restart.
func newCookies(cfg cookie.Config, env environment.Environment, log *slog.Logger) (*cookie.Manager, error) {
	if len(cfg.SecretList()) == 0 && !env.IsProduction() {
		log.Warn("COOKIE_SECRETS not set, using a random secret", logger.Component("main"))
		cfg.Secrets = uuid.NewString() + uuid.NewString()
	}
	m, err := cookie.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("cookie manager: %w", err)
	}
	return m, nil
}

func purge(ctx context.Context, forms *donorform.Service, every time.Duration, log *slog.Logger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := forms.Purge(ctx)
			if err != nil {
				log.WarnContext(ctx, "notification purge failed", logger.Component("main"), logger.Error(err))
				continue
			}
			if n > 0 {
				log.DebugContext(ctx, "expired notifications purged", logger.Component("main"), slog.Int("count", n))
			}
		}
	}
}
