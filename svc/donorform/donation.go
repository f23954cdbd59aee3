package donorform

import (
	"errors"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/datefmt"
	"github.com/dmitrymomot/donorkit/pkg/eligibility"
)

// ScheduleResponse describes when a donor may give again.
type ScheduleResponse struct {
	NextDonation string `json:"next_donation,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
	CanDonate    bool   `json:"can_donate"`
	Message      string `json:"message"`
}

func (s *Service) donationInfo(ctx handler.Context, _ struct{}) handler.Response {
	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		return handler.Templ(chrome.DonationInfo())
	}
	if err := c.ShowDonationInfo(ctx); err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}

// donationSchedule computes the next possible donation and the expiry of the
// last unit. An empty date means the donor has never given.
func (s *Service) donationSchedule(ctx handler.Context, req ScheduleRequest) handler.Response {
	now := s.calc.Now()
	resp := ScheduleResponse{CanDonate: true}

	if req.LastDonation != "" {
		last, err := datefmt.Parse(req.LastDonation, now.Location())
		if err != nil {
			return handler.Error(errors.Join(ErrInvalidDate, err))
		}
		next := eligibility.NextDonationDate(last)
		resp.NextDonation = datefmt.ISO(next)
		resp.Expiry = datefmt.ISO(eligibility.ExpiryDate(last))
		resp.CanDonate = eligibility.CanDonateAgain(last, now)
		if !resp.CanDonate {
			resp.Message = s.text(ctx, "donation.next", "Next donation possible on "+datefmt.Long(next),
				map[string]any{"date": datefmt.Long(next)})
		}
	}
	if resp.CanDonate {
		resp.Message = s.text(ctx, "donation.ready", "Eligible to donate again", nil)
	}

	c, ok, err := s.chromeFor(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		return handler.JSON(resp)
	}
	if err := c.SetSignals(ctx, map[string]any{
		"nextDonation":   resp.NextDonation,
		"canDonate":      resp.CanDonate,
		"donationStatus": resp.Message,
	}); err != nil {
		return handler.Error(err)
	}
	return handler.Written()
}

func (s *Service) donationInfoModal(ctx handler.Context, _ struct{}) handler.Response {
	modal := chrome.Modal(
		s.text(ctx, "donation.title", "Donation Information", nil),
		chrome.DonationInfo(),
		chrome.Button{Type: "secondary", Text: s.text(ctx, "modal.close", "Close", nil), OnClick: "this.closest('.modal-overlay').remove()"},
	)
	return handler.Templ(modal)
}

func (s *Service) closeModal(handler.Context, struct{}) handler.Response {
	return handler.Templ(chrome.CloseModal())
}
