package chrome

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// FieldFeedback renders the inline message under a field: the failure
// message for invalid results, "Valid" otherwise.
func FieldFeedback(fieldID string, res validator.Result) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<div")
		h.attr("id", FeedbackID(fieldID))
		if res.Valid {
			h.raw(` class="success-message"><i class="fas fa-check-circle"></i> Valid</div>`)
			return h.err
		}
		h.raw(` class="error-message" role="alert"><i class="fas fa-exclamation-circle"></i> `)
		h.text(res.Message)
		h.raw("</div>")
		return h.err
	})
}

// ClearFeedback renders an empty feedback slot, removing any message.
func ClearFeedback(fieldID string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<div")
		h.attr("id", FeedbackID(fieldID))
		h.raw("></div>")
		return h.err
	})
}

// AgeDisplay renders the age and the one-line eligibility summary shown
// under the date of birth input.
func AgeDisplay(res eligibility.Result, ageText, summary string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		state, icon := "ineligible", "❌"
		if res.Eligible {
			state, icon = "eligible", "✅"
		}
		h.raw("<div")
		h.attr("id", AgeDisplayID)
		h.attr("class", "age-display age-display-"+state)
		h.attr("data-age", strconv.Itoa(res.Age))
		h.raw(`><span class="age-icon">`, icon, `</span><span><strong>Age:</strong> `)
		h.text(ageText)
		h.raw("<br><small>")
		h.text(summary)
		h.raw("</small></span></div>")
		return h.err
	})
}

// EligibilityBanner renders the advisory shown for ineligible donors.
func EligibilityBanner(id, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<div")
		h.attr("id", id)
		h.attr("class", "eligibility-alert")
		h.attr("role", "alert")
		h.attr("data-ttl", strconv.FormatInt(notifications.BannerTTL.Milliseconds(), 10))
		h.raw(`><i class="fas fa-exclamation-triangle"></i><div><strong>Donation Eligibility</strong><div class="eligibility-alert-message">`)
		h.text(message)
		h.raw(`</div></div><button type="button" class="eligibility-alert-close" onclick="this.parentElement.remove()"><i class="fas fa-times"></i></button></div>`)
		return h.err
	})
}

// ToastID is the element id of a rendered notification.
func ToastID(n notifications.Notification) string {
	return "toast-" + n.ID
}

// Toast renders a notification. A title, when present, is shown above the
// message.
func Toast(n notifications.Notification) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<div")
		h.attr("id", ToastID(n))
		h.attr("class", "notification notification-"+string(n.Type))
		h.attr("role", "status")
		if ttl := n.TTL(); ttl > 0 {
			h.attr("data-ttl", strconv.FormatInt(ttl.Milliseconds(), 10))
		}
		h.raw(`><i class="fas fa-`, n.Type.Icon(), `"></i><div class="notification-content">`)
		if n.Title != "" {
			h.raw(`<div class="notification-title">`)
			h.text(n.Title)
			h.raw("</div>")
		}
		h.raw(`<div class="notification-message">`)
		h.text(n.Message)
		h.raw(`</div></div><button type="button" class="notification-close" onclick="this.parentElement.remove()"><i class="fas fa-times"></i></button></div>`)
		return h.err
	})
}

// DateHelper renders the long form of a date under its input. An empty text
// clears the helper.
func DateHelper(fieldID, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<small")
		h.attr("id", HelperID(fieldID))
		h.raw(` class="date-helper text-sm text-muted mt-1 block">`)
		h.text(text)
		h.raw("</small>")
		return h.err
	})
}

// DonationInfo renders the donation facts panel shown when a donation is
// recorded together with the donor.
func DonationInfo() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<div")
		h.attr("id", DonationInfoID)
		h.raw(` class="donation-info"><strong><i class="fas fa-info-circle"></i> Donation Information:</strong><ul>`)
		for _, item := range []string{
			"Standard donation is 1 unit (≈450ml)",
			"Double donation (2 units) requires special eligibility",
			fmt.Sprintf("Blood expires after %d days", eligibility.ShelfLifeDays),
			fmt.Sprintf("Donors must wait %d days between donations", eligibility.DonationIntervalDays),
		} {
			h.raw("<li>")
			h.text(item)
			h.raw("</li>")
		}
		h.raw("</ul></div>")
		return h.err
	})
}

// Button is an action rendered in a modal footer.
type Button struct {
	Type    string // primary, secondary, danger
	Text    string
	Icon    string
	OnClick string
}

// Modal renders a dialog with an optional button row. Clicking the overlay
// closes it.
func Modal(title string, content templ.Component, buttons ...Button) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<div")
		h.attr("id", ModalRootID)
		h.raw(`><div class="modal-overlay" onclick="if(event.target===this)this.remove()"><div class="modal" role="dialog" aria-modal="true"><h3 class="text-xl font-bold mb-4">`)
		h.text(title)
		h.raw(`</h3><div class="modal-content">`)
		if h.err != nil {
			return h.err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw("</div>")
		if len(buttons) > 0 {
			h.raw(`<div class="form-actions">`)
			for _, b := range buttons {
				typ := b.Type
				if typ == "" {
					typ = "secondary"
				}
				h.raw("<button")
				h.attr("type", "button")
				h.attr("class", "btn btn-"+typ)
				if b.OnClick != "" {
					h.attr("onclick", b.OnClick)
				}
				h.raw(">")
				if b.Icon != "" {
					h.raw("<i")
					h.attr("class", b.Icon)
					h.raw("></i> ")
				}
				h.text(b.Text)
				h.raw("</button>")
			}
			h.raw("</div>")
		}
		h.raw("</div></div></div>")
		return h.err
	})
}

// CloseModal renders an empty modal root.
func CloseModal() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<div")
		h.attr("id", ModalRootID)
		h.raw("></div>")
		return h.err
	})
}

// ResultsCount renders the search results counter.
func ResultsCount(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<span")
		h.attr("id", ResultsCountID)
		h.raw(">")
		h.text(text)
		h.raw("</span>")
		return h.err
	})
}

// ErrorToast adapts Toast for handler.ErrorHandlerConfig.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	typ := notifications.Type(p.Type)
	switch typ {
	case notifications.TypeError, notifications.TypeWarning, notifications.TypeInfo:
	default:
		typ = notifications.TypeError
	}
	id := p.RequestID
	if id == "" {
		id = "error"
	}
	return Toast(notifications.Notification{ID: id, Type: typ, Message: p.Message})
}

// ErrorPage renders a minimal standalone error page.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html><head><meta charset="UTF-8"><title>`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw(`</title></head><body><main class="error-page"><h1>`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw("</h1><p>")
		h.text(p.Error)
		h.raw("</p>")
		if p.RequestID != "" {
			h.raw(`<p class="text-muted">Request ID: <code>`)
			h.text(p.RequestID)
			h.raw("</code></p>")
		}
		if p.RetryURL != "" {
			h.raw("<a")
			h.attr("href", p.RetryURL)
			h.raw(">Try again</a>")
		}
		h.raw("</main></body></html>")
		return h.err
	})
}
