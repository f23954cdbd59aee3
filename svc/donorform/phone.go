package donorform

import (
	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/sanitizer"
)

// PhoneResponse is the masked phone value.
type PhoneResponse struct {
	Phone    string `json:"phone"`
	Complete bool   `json:"complete"`
}

// phone masks the typed phone number as "(DDD) DDD-DDDD". Datastar requests
// get the masked value back as the phone signal.
func (s *Service) phone(ctx handler.Context, req PhoneRequest) handler.Response {
	masked := sanitizer.FormatPhone(req.Phone)
	resp := PhoneResponse{
		Phone:    masked,
		Complete: len(sanitizer.PhoneDigits(masked)) == sanitizer.MaxPhoneDigits,
	}

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		return handler.JSON(resp)
	}
	if err := c.SetSignals(ctx, map[string]any{"phone": resp.Phone}); err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}
