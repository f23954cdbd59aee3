package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/i18n"
)

func newMapTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"greeting": "Hello, %{name}!",
			"validation": map[string]any{
				"phone": "Please enter a valid %{digits}-digit phone number",
			},
		},
		"es": {
			"greeting": "¡Hola, %{name}!",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	t.Run("substitutes named placeholders", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, Ada!", tr.T("en", "greeting", "name", "Ada"))
		assert.Equal(t, "¡Hola, Ada!", tr.T("es", "greeting", "name", "Ada"))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Please enter a valid 10-digit phone number",
			tr.T("es", "validation.phone", "digits", "10"))
		assert.Equal(t, "Hello, Ada!", tr.T("fr", "greeting", "name", "Ada"))
	})

	t.Run("missing key renders as key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nope.missing", tr.T("en", "nope.missing"))
	})

	t.Run("unknown placeholder kept", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting"))
	})
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t, i18n.WithFallbackToKey(false), i18n.WithNoLogging())
	assert.Empty(t, tr.T("en", "nope.missing"))
	assert.Equal(t, "default 1", tr.Td("en", "nope.missing", "default %{n}", "n", "1"))
}

func TestTranslator_Message(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	assert.Equal(t, "Please enter a valid 10-digit phone number",
		tr.Message("en", "validation.phone", "fallback", map[string]any{"digits": 10}))
	assert.Equal(t, "fallback 7",
		tr.Message("en", "validation.unknown", "fallback %{n}", map[string]any{"n": 7}))
	assert.Equal(t, "plain", tr.Message("en", "", "plain", nil))
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	assert.True(t, tr.HasTranslation("en", "validation.phone"))
	assert.False(t, tr.HasTranslation("es", "validation.phone"))
	assert.False(t, tr.HasTranslation("en", "validation"))
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	ctx := i18n.SetLocale(context.Background(), "es")
	assert.Equal(t, "¡Hola, Bo!", tr.Tc(ctx, "greeting", "name", "Bo"))
	assert.Equal(t, "Hello, Bo!", tr.Tc(context.Background(), "greeting", "name", "Bo"))
}

func TestNewTranslator_NilAdapter(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	require.ErrorIs(t, err, i18n.ErrNilAdapter)
}

func TestNewDefaultTranslator(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewDefaultTranslator(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	assert.Equal(t, "This field is required", tr.T("en", "validation.required"))
	assert.Equal(t, "3 results found", tr.T("en", "search.results", "count", "3"))
	assert.Equal(t, "No data to export", tr.T("en", "export.no_data"))

	for _, lang := range []string{"en", "es"} {
		for _, key := range []string{
			"validation.required", "validation.email", "validation.phone", "validation.date",
			"validation.date_not_future", "validation.dob_not_future",
			"eligibility.too_young", "eligibility.too_old", "export.no_data", "search.results",
		} {
			assert.True(t, tr.HasTranslation(lang, key), "%s: %s", lang, key)
		}
	}
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges files", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"msgs/a.yaml":    {Data: []byte("en:\n  a: \"A\"\n")},
			"msgs/b.yml":     {Data: []byte("en:\n  b: \"B\"\nes:\n  a: \"Á\"\n")},
			"msgs/skip.json": {Data: []byte(`{"en":{"c":"C"}}`)},
		}

		tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "msgs"))
		require.NoError(t, err)
		assert.Equal(t, "A", tr.T("en", "a"))
		assert.Equal(t, "B", tr.T("en", "b"))
		assert.Equal(t, "Á", tr.T("es", "a"))
		assert.False(t, tr.HasTranslation("en", "c"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{"msgs/a.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "msgs").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("non-map language", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{"msgs/a.yaml": {Data: []byte("en: \"flat\"\n")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "msgs").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("no files", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{"msgs/readme.txt": {Data: []byte("hi")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "msgs").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "msgs").Load(ctx)
		require.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancelled)
	})
}
