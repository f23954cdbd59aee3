package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches github.com/a-h/templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

// Patch creates a TemplPatch for TemplMulti and StreamContext.SendMultiple.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templMultiResponse struct {
	status  int
	patches []TemplPatch
}

// Render sends one SSE patch per component for Datastar requests and the
// concatenated HTML otherwise.
func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := sseFor(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders a single component. Datastar requests receive it as an SSE
// element patch with the given options; other requests receive plain HTML.
//
//	return handler.Templ(
//		chrome.FieldFeedback("email", res),
//		handler.WithTarget("#email-feedback"),
//	)
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templMultiResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplMulti renders several components, each with its own target.
//
//	return handler.TemplMulti(
//		handler.Patch(chrome.AgeDisplay(res), handler.WithTarget("#age-display")),
//		handler.Patch(chrome.EligibilityBanner(text), handler.WithTarget("#banner")),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches}
}

// TemplWithStatus renders like TemplMulti but sets status for plain HTML
// responses. Datastar streams always answer 200.
func TemplWithStatus(status int, patches ...TemplPatch) Response {
	return templMultiResponse{status: status, patches: patches}
}
