package chrome

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// SSEChrome renders chrome through a Datastar event stream. It also
// implements notifications.Deliverer so notifications sent while the
// request is open reach the page.
type SSEChrome struct {
	stream   handler.StreamContext
	window   eligibility.Window
	localize Localizer
	styles   *Styles
	newID    func() string
}

var (
	_ Chrome                  = (*SSEChrome)(nil)
	_ SelectionCopier         = (*SSEChrome)(nil)
	_ notifications.Deliverer = (*SSEChrome)(nil)
)

// Option configures an SSEChrome.
type Option func(*SSEChrome)

// WithWindow sets the eligibility window quoted in banners.
func WithWindow(w eligibility.Window) Option {
	return func(c *SSEChrome) {
		c.window = w
	}
}

// WithLocalizer sets the message resolver.
func WithLocalizer(l Localizer) Option {
	return func(c *SSEChrome) {
		if l != nil {
			c.localize = l
		}
	}
}

// WithStyles injects the registry's stylesheet on the first patch.
func WithStyles(s *Styles) Option {
	return func(c *SSEChrome) {
		c.styles = s
	}
}

// WithIDGenerator overrides the banner id generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *SSEChrome) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// NewSSEChrome creates a chrome writing to stream.
func NewSSEChrome(stream handler.StreamContext, opts ...Option) *SSEChrome {
	c := &SSEChrome{
		stream:   stream,
		window:   eligibility.DefaultWindow,
		localize: englishOnly,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnsureStyles injects the stylesheet unless the page already has it.
func (c *SSEChrome) EnsureStyles(context.Context) error {
	if c.styles == nil {
		return nil
	}
	return c.stream.ExecuteScript(c.styles.InjectScript())
}

func (c *SSEChrome) ShowResult(_ context.Context, fieldID string, res validator.Result) error {
	if !res.Valid {
		res.Message = c.localize(res.TranslationKey, res.Message, res.TranslationValues)
	}
	return c.stream.SendComponent(FieldFeedback(fieldID, res))
}

// ClearResult removes the feedback shown under fieldID.
func (c *SSEChrome) ClearResult(_ context.Context, fieldID string) error {
	return c.stream.SendComponent(ClearFeedback(fieldID))
}

func (c *SSEChrome) ShowEligibilityBanner(ctx context.Context, res eligibility.Result) error {
	values := map[string]any{"age": res.Age, "min": c.window.Min, "max": c.window.Max}
	ageText := c.localize("eligibility.age", strconv.Itoa(res.Age)+" years", values)

	summaryKey := "eligibility.eligible"
	if !res.Eligible {
		summaryKey = "eligibility.not_eligible"
	}
	summary := c.localize(summaryKey, eligibility.Summary(res, c.window), values)

	if err := c.stream.SendComponent(AgeDisplay(res, ageText, summary)); err != nil {
		return err
	}
	if res.Eligible {
		return nil
	}

	key := "eligibility.too_young"
	if res.Reason == eligibility.ReasonTooOld {
		key = "eligibility.too_old"
	}
	message := c.localize(key, eligibility.Advisory(res, c.window), values)

	id := "banner-" + c.newID()
	if err := c.stream.SendComponent(
		EligibilityBanner(id, message),
		handler.WithTarget(selector(BannerContainerID)),
		handler.WithPatchMode(handler.PatchAppend),
	); err != nil {
		return err
	}
	return c.stream.ExecuteScript(RemoveAfterScript(id, notifications.BannerTTL))
}

func (c *SSEChrome) TriggerDownload(_ context.Context, text, mimeType, filename string) error {
	return c.stream.ExecuteScript(DownloadScript(text, mimeType, filename))
}

func (c *SSEChrome) WriteClipboard(_ context.Context, text string) error {
	return c.stream.ExecuteScript(ClipboardScript(text))
}

func (c *SSEChrome) SelectionCopy(_ context.Context, text string) error {
	return c.stream.ExecuteScript(SelectionCopyScript(text))
}

// OpenPrintView opens html in a new window that prints itself.
func (c *SSEChrome) OpenPrintView(_ context.Context, html string) error {
	return c.stream.ExecuteScript(PrintScript(html))
}

func (c *SSEChrome) Notify(_ context.Context, n notifications.Notification) error {
	if n.ID == "" {
		n.ID = c.newID()
	}
	if err := c.stream.SendComponent(
		Toast(n),
		handler.WithTarget(selector(ToastContainerID)),
		handler.WithPatchMode(handler.PatchPrepend),
	); err != nil {
		return err
	}
	if ttl := n.TTL(); ttl > 0 {
		return c.stream.ExecuteScript(RemoveAfterScript(ToastID(n), ttl))
	}
	return nil
}

// Deliver implements notifications.Deliverer.
func (c *SSEChrome) Deliver(ctx context.Context, n notifications.Notification) error {
	return c.Notify(ctx, n)
}

// ShowDateHelper renders the long form of a date under fieldID.
func (c *SSEChrome) ShowDateHelper(_ context.Context, fieldID, text string) error {
	return c.stream.SendComponent(DateHelper(fieldID, text))
}

// ShowDonationInfo renders the donation facts panel.
func (c *SSEChrome) ShowDonationInfo(context.Context) error {
	return c.stream.SendComponent(DonationInfo())
}

// ShowResultsCount updates the search counter.
func (c *SSEChrome) ShowResultsCount(_ context.Context, count int) error {
	text := c.localize("search.results", strconv.Itoa(count)+" results found", map[string]any{"count": count})
	return c.stream.SendComponent(ResultsCount(text))
}

// SetSignals patches frontend signals.
func (c *SSEChrome) SetSignals(_ context.Context, signals map[string]any) error {
	return c.stream.SendSignals(signals)
}
