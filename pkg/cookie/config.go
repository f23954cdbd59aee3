package cookie

import (
	"net/http"
	"strings"
)

// Config is the environment-driven cookie configuration.
type Config struct {
	// Comma separated; the first one signs.
	Secrets     string        `env:"COOKIE_SECRETS"`
	Path        string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string        `env:"COOKIE_DOMAIN"`
	MaxAge      int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure      bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite    http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
	SessionName string        `env:"COOKIE_SESSION_NAME" envDefault:"donorkit_sid"`
}

// SecretList splits Secrets on commas, dropping blanks.
func (c Config) SecretList() []string {
	var secrets []string
	for s := range strings.SplitSeq(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from cfg. Zero values keep the defaults.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 6+len(opts))
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.MaxAge != 0 {
		configOpts = append(configOpts, WithMaxAge(cfg.MaxAge))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}
	if cfg.SessionName != "" {
		configOpts = append(configOpts, WithSessionName(cfg.SessionName))
	}
	return New(cfg.SecretList(), append(configOpts, opts...)...)
}
