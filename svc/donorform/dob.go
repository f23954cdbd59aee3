package donorform

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/datefmt"
	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// DOBField is the id of the date of birth input.
const DOBField = "dob"

// EligibilityResponse is the plain-request answer of /dob.
type EligibilityResponse struct {
	Age      int                `json:"age"`
	Eligible bool               `json:"eligible"`
	Reason   eligibility.Reason `json:"reason"`
	AgeText  string             `json:"age_text"`
	Summary  string             `json:"summary"`
	Advisory string             `json:"advisory,omitempty"`
}

func (s *Service) eligibilityResponse(ctx context.Context, res eligibility.Result) EligibilityResponse {
	w := s.calc.Window()
	values := map[string]any{"age": res.Age, "min": w.Min, "max": w.Max}

	out := EligibilityResponse{
		Age:      res.Age,
		Eligible: res.Eligible,
		Reason:   res.Reason,
		AgeText:  s.text(ctx, "eligibility.age", strconv.Itoa(res.Age)+" years", values),
	}
	if res.Eligible {
		out.Summary = s.text(ctx, "eligibility.eligible", eligibility.Summary(res, w), values)
		return out
	}
	out.Summary = s.text(ctx, "eligibility.not_eligible", eligibility.Summary(res, w), values)

	key := "eligibility.too_young"
	if res.Reason == eligibility.ReasonTooOld {
		key = "eligibility.too_old"
	}
	out.Advisory = s.text(ctx, key, eligibility.Advisory(res, w), values)
	return out
}

// dateOfBirth validates the date of birth, then shows the age, the
// eligibility summary and, for ineligible donors, the advisory banner.
func (s *Service) dateOfBirth(ctx handler.Context, req DOBRequest) handler.Response {
	spec := validator.FieldSpec{Name: DOBField, Kind: validator.KindDateOfBirth, Required: true, Value: req.DOB}
	check := s.validate(spec)

	var (
		res eligibility.Result
		err error
	)
	if check.Valid {
		if res, err = s.calc.ComputeString(req.DOB); err != nil {
			return handler.Error(errors.Join(ErrInvalidDate, err))
		}
		s.metrics.IncEligibility(string(res.Reason))
	}

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		if !check.Valid {
			var errs validator.ValidationErrors
			errs.Add(check.ValidationError(DOBField))
			return handler.JSONError(handler.ValidationErrorFrom(errs, s.errorMessage(ctx)))
		}
		return handler.JSON(s.eligibilityResponse(ctx, res))
	}

	if err := c.ShowResult(ctx, DOBField, check); err != nil {
		return handler.Error(err)
	}
	if !check.Valid {
		return handler.Written()
	}
	if err := c.ShowEligibilityBanner(ctx, res); err != nil {
		return handler.Error(err)
	}
	if err := c.SetSignals(ctx, map[string]any{"age": res.Age, "eligible": res.Eligible}); err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}

// BoundsResponse is the date picker range for the date of birth.
type BoundsResponse struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

func (s *Service) dobBounds(ctx handler.Context, _ struct{}) handler.Response {
	earliest, latest := s.calc.Bounds()
	bounds := BoundsResponse{Min: datefmt.ISO(earliest), Max: datefmt.ISO(latest)}

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		return handler.JSON(bounds)
	}
	if err := c.SetSignals(ctx, map[string]any{"dobMin": bounds.Min, "dobMax": bounds.Max}); err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}

// dateHelper shows the long form of a date under its input.
func (s *Service) dateHelper(ctx handler.Context, req DateHelperRequest) handler.Response {
	if req.Field == "" {
		return handler.Error(ErrMissingField)
	}
	text := datefmt.Helper(req.Value)

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		return handler.Templ(chrome.DateHelper(req.Field, text))
	}
	if err := c.ShowDateHelper(ctx, req.Field, text); err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}
