package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed rule of one field. TranslationKey and
// TranslationValues let the caller localize Message.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the error returned when a form has invalid fields.
// Entries keep rule order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field failed any rule.
func (ve ValidationErrors) Has(field string) bool {
	return len(ve.Get(field)) > 0
}

// Get returns the messages recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields lists the invalid fields in the order they failed.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, e := range ve {
		if !contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Rule is a deferred check. Check is evaluated lazily so a chain can stop
// before rules whose input is known to be unusable.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns all failures as ValidationErrors.
func Apply(rules ...Rule) error {
	return run(false, rules)
}

// First evaluates rules in order and stops at the first failure. Field
// feedback shows one message at a time.
func First(rules ...Rule) error {
	return run(true, rules)
}

func run(stopAtFirst bool, rules []Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check() {
			continue
		}
		errs.Add(rule.Error)
		if stopAtFirst {
			break
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if err != nil && errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
