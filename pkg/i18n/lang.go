package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header before parsing.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best supported language for an
// Accept-Language header, honouring quality values and falling back from
// regional tags to their base language (en-US -> en). defaultLang is
// returned when nothing matches or the header is malformed.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	supported := make([]language.Tag, 0, len(supportedLangs))
	codes := make([]string, 0, len(supportedLangs))
	for _, code := range supportedLangs {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		codes = append(codes, code)
	}
	if len(supported) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return codes[idx]
}
