package donorform

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

func (s *Service) fieldSpec(req FieldRequest) (validator.FieldSpec, error) {
	if req.Field == "" {
		return validator.FieldSpec{}, ErrMissingField
	}
	kind, err := validator.ParseKind(req.Kind)
	if err != nil {
		return validator.FieldSpec{}, errors.Join(ErrUnknownKind, err)
	}
	return validator.FieldSpec{
		Name:     req.Field,
		Kind:     kind,
		Required: req.Required,
		Value:    req.Value,
	}, nil
}

// validate runs one field and records the outcome.
func (s *Service) validate(spec validator.FieldSpec) validator.Result {
	res := validator.Validate(spec, s.calc.Now())
	s.metrics.IncValidation(string(spec.Kind), res.Valid)
	return res
}

// validateField answers the blur/input check of one field with its
// feedback element.
func (s *Service) validateField(ctx handler.Context, req FieldRequest) handler.Response {
	spec, err := s.fieldSpec(req)
	if err != nil {
		return handler.Error(err)
	}
	res := s.validate(spec)
	cleared := res.Valid && strings.TrimSpace(spec.Value) == ""

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		if cleared {
			return handler.Templ(chrome.ClearFeedback(spec.Name))
		}
		return handler.Templ(chrome.FieldFeedback(spec.Name, s.localizeResult(ctx, res)))
	}
	if cleared {
		err = c.ClearResult(ctx, spec.Name)
	} else {
		err = c.ShowResult(ctx, spec.Name, res)
	}
	if err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}

// validateForm checks every field on submit. Datastar requests get the
// feedback of each field plus a toast when the form is invalid; plain
// requests get 422 with the localized messages per field.
func (s *Service) validateForm(ctx handler.Context, req FormRequest) handler.Response {
	specs := make([]validator.FieldSpec, 0, len(req.Fields))
	for _, f := range req.Fields {
		spec, err := s.fieldSpec(f)
		if err != nil {
			return handler.Error(err)
		}
		specs = append(specs, spec)
	}

	errs := validator.ExtractValidationErrors(validator.ValidateForm(specs, s.calc.Now()))
	for _, spec := range specs {
		s.metrics.IncValidation(string(spec.Kind), !errs.Has(spec.Name))
	}

	if !handler.IsDataStar(ctx.Request()) {
		if errs.IsEmpty() {
			return handler.JSON(map[string]bool{"valid": true})
		}
		return handler.JSONError(handler.ValidationErrorFrom(errs, s.errorMessage(ctx)))
	}

	sid := s.session(ctx)
	c, _, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	for _, spec := range specs {
		if err := c.ShowResult(ctx, spec.Name, errs.Result(spec.Name)); err != nil {
			return handler.Error(err)
		}
	}
	if !errs.IsEmpty() {
		s.toast(ctx, c, sid, notifications.TypeError, "", "validation.form_invalid", "Please fill all required fields correctly.")
	}
	return handler.Written()
}

func (s *Service) errorMessage(ctx context.Context) func(validator.ValidationError) string {
	return func(e validator.ValidationError) string {
		return s.text(ctx, e.TranslationKey, e.Message, e.TranslationValues)
	}
}
