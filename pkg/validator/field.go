package validator

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the semantic type of a form field. The caller supplies it
// explicitly instead of the validator inspecting input attributes.
type Kind string

const (
	KindText          Kind = "text"
	KindEmail         Kind = "email"
	KindTel           Kind = "tel"
	KindDateOfBirth   Kind = "date-of-birth"
	KindDateNotFuture Kind = "date-not-future"
	KindRequired      Kind = "required-generic"
)

var kinds = []Kind{KindText, KindEmail, KindTel, KindDateOfBirth, KindDateNotFuture, KindRequired}

// ParseKind maps a kind tag to a Kind. An empty tag means KindText.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindText, nil
	}
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsDate reports whether values of this kind are calendar dates.
func (k Kind) IsDate() bool {
	return k == KindDateOfBirth || k == KindDateNotFuture
}

// FieldSpec is one field value to classify.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Required bool
	Value    string
}

// Result is the outcome of validating one field.
type Result struct {
	Valid             bool
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidResult is returned for fields that pass every rule.
func ValidResult() Result {
	return Result{Valid: true}
}

func resultFromError(err ValidationError) Result {
	return Result{
		Message:           err.Message,
		TranslationKey:    err.TranslationKey,
		TranslationValues: err.TranslationValues,
	}
}

// Result returns the first failure recorded for field, or a valid result
// when the field passed.
func (ve ValidationErrors) Result(field string) Result {
	for _, e := range ve {
		if e.Field == field {
			return resultFromError(e)
		}
	}
	return ValidResult()
}

// ValidationError converts a failed result back into a field error.
func (r Result) ValidationError(field string) ValidationError {
	return ValidationError{
		Field:             field,
		Message:           r.Message,
		TranslationKey:    r.TranslationKey,
		TranslationValues: r.TranslationValues,
	}
}

// Rules returns the ordered rule chain for a field. The first failing rule
// decides the result. now is the single "current date" snapshot used by
// date rules.
func Rules(spec FieldSpec, now time.Time) []Rule {
	value := strings.TrimSpace(spec.Value)

	var rules []Rule
	if spec.Required || spec.Kind == KindRequired {
		rules = append(rules, Required(spec.Name, value))
	}
	if value == "" {
		return rules
	}

	switch spec.Kind {
	case KindEmail:
		rules = append(rules, ValidEmail(spec.Name, value))
	case KindTel:
		rules = append(rules, ValidPhone(spec.Name, value))
	case KindDateOfBirth, KindDateNotFuture:
		date, err := ParseDate(value, now.Location())
		if err != nil {
			return append(rules, ValidDate(spec.Name, value))
		}
		if spec.Kind == KindDateOfBirth {
			rules = append(rules, NotFutureBirthdate(spec.Name, date, now))
		} else {
			rules = append(rules, NotFutureDate(spec.Name, date, now))
		}
	}
	return rules
}

// Validate classifies a single field value. It never mutates spec.
func Validate(spec FieldSpec, now time.Time) Result {
	if err := First(Rules(spec, now)...); err != nil {
		return resultFromError(ExtractValidationErrors(err)[0])
	}
	return ValidResult()
}

// ValidateValue validates a bare value of the given kind against the
// current time. The required-generic kind is the only one that rejects
// empty input.
func ValidateValue(kind Kind, raw string) Result {
	return Validate(FieldSpec{Name: string(kind), Kind: kind, Value: raw}, time.Now())
}

// ValidateForm validates every field and returns ValidationErrors holding
// the first failure of each invalid field, or nil when the form is valid.
func ValidateForm(specs []FieldSpec, now time.Time) error {
	var errs ValidationErrors
	for _, spec := range specs {
		if res := Validate(spec, now); !res.Valid {
			errs.Add(res.ValidationError(spec.Name))
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
