package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewDefaultTranslator loads the bundled catalog of form, eligibility and
// export messages.
func NewDefaultTranslator(ctx context.Context, opts ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), locales, "locales"), opts...)
}
