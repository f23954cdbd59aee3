package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor returns the language for a request, or "" when undetermined.
type LangExtractor func(r *http.Request) string

// RFC 5646 recommends 35 characters max
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header. Explicit choices must name a
// supported language; the header is negotiated with ParseAcceptLanguage.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	supported := make([]string, len(cfg.SupportedLangs))
	for i, lang := range cfg.SupportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	explicit := func(lang string) string {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if len(supported) == 0 || slices.Contains(supported, lang) {
			return lang
		}
		return ""
	}

	return func(r *http.Request) string {
		if cookie, err := r.Cookie(cfg.CookieName); err == nil {
			if lang := explicit(cookie.Value); lang != "" {
				return lang
			}
		}

		if lang := explicit(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
			return lang
		}

		if header := r.Header.Get("Accept-Language"); header != "" && len(supported) > 0 {
			return ParseAcceptLanguage(header, supported, "")
		}

		return ""
	}
}
