// Package i18n translates the user-facing messages of the donor forms.
//
// Messages live in YAML catalogs keyed by language and addressed with
// dot-separated keys ("validation.required"). Placeholders use the
// "%{name}" form. The bundled English and Spanish catalogs are loaded with
// NewDefaultTranslator; other sources plug in through TranslationAdapter.
//
//	tr, err := i18n.NewDefaultTranslator(ctx)
//	msg := tr.T("en", "search.results", "count", "3") // "3 results found"
//
// Validation errors carry a translation key and values, rendered with
// Translator.Message. Middleware negotiates the request language from the
// "lang" cookie, the "lang" query parameter or Accept-Language (matched with
// golang.org/x/text/language) and stores it in the context.
package i18n
