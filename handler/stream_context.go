package handler

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with helpers for an open SSE stream.
type StreamContext interface {
	Context

	// SendComponent patches a templ component into the page.
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendMultiple patches several components in order.
	SendMultiple(patches ...TemplPatch) error

	// SendSignal updates a single frontend signal.
	SendSignal(name string, value any) error

	// SendSignals updates several frontend signals at once.
	SendSignals(signals map[string]any) error

	// ExecuteScript runs a script in the browser.
	ExecuteScript(script string) error
}

// NewStreamContext wraps ctx with streaming helpers. It fails with
// ErrSSENotInitialized for non-Datastar requests.
func NewStreamContext(ctx Context) (StreamContext, error) {
	sse := ctx.SSE()
	if sse == nil {
		return nil, ErrSSENotInitialized
	}
	return &streamContext{Context: ctx, sse: sse}, nil
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, p := range patches {
		if err := c.sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignal(name string, value any) error {
	return c.SendSignals(map[string]any{name: value})
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) ExecuteScript(script string) error {
	return c.sse.ExecuteScript(script)
}
