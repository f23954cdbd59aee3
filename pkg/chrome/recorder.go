package chrome

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

// EventKind names a recorded chrome call.
type EventKind string

const (
	EventResult        EventKind = "result"
	EventBanner        EventKind = "banner"
	EventDownload      EventKind = "download"
	EventClipboard     EventKind = "clipboard"
	EventSelectionCopy EventKind = "selection_copy"
	EventNotify        EventKind = "notify"
)

// Event is one recorded chrome call. Only the fields relevant to Kind are
// set.
type Event struct {
	Kind         EventKind
	FieldID      string
	Result       validator.Result
	Eligibility  eligibility.Result
	Text         string
	MIMEType     string
	Filename     string
	Notification notifications.Notification
}

// Recorder is an in-memory Chrome for tests and non-interactive callers.
type Recorder struct {
	// ClipboardUnavailable makes WriteClipboard fail with
	// ErrClipboardUnavailable.
	ClipboardUnavailable bool

	mu     sync.Mutex
	events []Event
}

var (
	_ Chrome                  = (*Recorder)(nil)
	_ SelectionCopier         = (*Recorder)(nil)
	_ notifications.Deliverer = (*Recorder)(nil)
)

func (r *Recorder) record(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of the recorded calls in order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Last returns the most recent event of kind.
func (r *Recorder) Last(kind EventKind) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// Reset drops recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *Recorder) ShowResult(_ context.Context, fieldID string, res validator.Result) error {
	return r.record(Event{Kind: EventResult, FieldID: fieldID, Result: res})
}

func (r *Recorder) ShowEligibilityBanner(_ context.Context, res eligibility.Result) error {
	return r.record(Event{Kind: EventBanner, Eligibility: res})
}

func (r *Recorder) TriggerDownload(_ context.Context, text, mimeType, filename string) error {
	return r.record(Event{Kind: EventDownload, Text: text, MIMEType: mimeType, Filename: filename})
}

func (r *Recorder) WriteClipboard(_ context.Context, text string) error {
	if r.ClipboardUnavailable {
		return ErrClipboardUnavailable
	}
	return r.record(Event{Kind: EventClipboard, Text: text})
}

func (r *Recorder) SelectionCopy(_ context.Context, text string) error {
	return r.record(Event{Kind: EventSelectionCopy, Text: text})
}

func (r *Recorder) Notify(_ context.Context, n notifications.Notification) error {
	return r.record(Event{Kind: EventNotify, Notification: n})
}

// Deliver implements notifications.Deliverer.
func (r *Recorder) Deliver(ctx context.Context, n notifications.Notification) error {
	return r.Notify(ctx, n)
}
