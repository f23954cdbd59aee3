package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translator resolves dot-separated message keys against a loaded catalog.
// Safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads the catalog from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, messages := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil messages for language %s", ErrInvalidCatalog, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes of the catalog.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used for unsupported requests.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// lookup walks a nested map using a dot-separated key such as
// "validation.required".
func lookup(m map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}

	return "", false
}

// find resolves key in lang, then in the default language.
func (t *Translator) find(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if messages, ok := t.translations[lang]; ok {
		if s, ok := lookup(messages, key); ok {
			return s, true
		}
	}
	if lang != t.defaultLang {
		if messages, ok := t.translations[t.defaultLang]; ok {
			if s, ok := lookup(messages, key); ok {
				return s, true
			}
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// HasTranslation reports whether key exists for lang itself, without fallback.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces "%{name}" placeholders. Unknown names are left as is.
func interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// T translates key for lang. Arguments are key/value pairs substituted into
// "%{key}" placeholders:
//
//	translator.T("en", "export.rows_found", "count", "3")
//
// A missing key renders as the key itself, or "" when WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.find(lang, key)
	if !ok {
		if t.fallbackToKey {
			return interpolate(key, pairs(args))
		}
		return ""
	}
	return interpolate(tmpl, pairs(args))
}

// Td translates key, rendering defaultValue when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.find(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return interpolate(tmpl, pairs(args))
}

// Message translates key with arbitrary values, the shape carried by
// validation errors. fallback is rendered when the key is missing or empty.
func (t *Translator) Message(lang, key, fallback string, values map[string]any) string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		params[k] = fmt.Sprint(v)
	}

	if key == "" {
		return interpolate(fallback, params)
	}
	tmpl, ok := t.find(lang, key)
	if !ok {
		return interpolate(fallback, params)
	}
	return interpolate(tmpl, params)
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
