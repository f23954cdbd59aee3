package chrome

import (
	"context"
	"errors"

	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// ErrClipboardUnavailable is returned when the browser clipboard API cannot
// be used. Callers fall back to the selection-and-copy path.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Chrome renders the visible feedback produced by the pure components.
type Chrome interface {
	// ShowResult replaces the feedback shown under fieldID.
	ShowResult(ctx context.Context, fieldID string, res validator.Result) error
	// ShowEligibilityBanner updates the age display and, for ineligible
	// results, shows a self-dismissing advisory banner.
	ShowEligibilityBanner(ctx context.Context, res eligibility.Result) error
	// TriggerDownload makes the browser save text as filename.
	TriggerDownload(ctx context.Context, text, mimeType, filename string) error
	// WriteClipboard copies text to the user's clipboard.
	WriteClipboard(ctx context.Context, text string) error
	// Notify shows a transient notification.
	Notify(ctx context.Context, n notifications.Notification) error
}

// SelectionCopier is implemented by chromes that can copy text without the
// clipboard API.
type SelectionCopier interface {
	SelectionCopy(ctx context.Context, text string) error
}

// CopyText writes text through c, falling back to a selection copy when the
// clipboard API is unavailable and c supports it.
func CopyText(ctx context.Context, c Chrome, text string) error {
	err := c.WriteClipboard(ctx, text)
	if !errors.Is(err, ErrClipboardUnavailable) {
		return err
	}
	if sc, ok := c.(SelectionCopier); ok {
		return sc.SelectionCopy(ctx, text)
	}
	return err
}

// Localizer resolves a message key. fallback is the English text, values
// fill %{name} placeholders.
type Localizer func(key, fallback string, values map[string]any) string

func englishOnly(_, fallback string, _ map[string]any) string {
	return fallback
}
