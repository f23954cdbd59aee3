package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/donorkit/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "es"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact", "es", "es"},
		{"regional falls back to base", "es-MX", "es"},
		{"quality order", "fr;q=0.9, es;q=0.8, en;q=0.5", "es"},
		{"unsupported", "de", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}

	assert.Equal(t, "en", i18n.ParseAcceptLanguage("es", nil, "en"))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "es")))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}))

	t.Run("accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "es", got)
	})

	t.Run("query wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
		req.Header.Set("Accept-Language", "es")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "en", got)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "ES"})
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "es", got)
	})

	t.Run("unsupported query ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, i18n.DefaultLanguage, got)
	})
}
