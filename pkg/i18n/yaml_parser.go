package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns the content of a translation file into language -> messages.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// YAMLParser reads catalogs whose top-level keys are language codes:
//
//	en:
//	  validation:
//	    required: "This field is required"
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrInvalidCatalog,
				fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		result[lang] = messages
	}

	if len(result) == 0 {
		return nil, errors.Join(ErrInvalidCatalog, errors.New("no languages defined"))
	}

	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
