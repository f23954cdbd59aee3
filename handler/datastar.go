package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by Datastar fetches.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarRequestHeader is set to "true" on every Datastar fetch.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarQueryParam carries signals on Datastar GET requests.
	DataStarQueryParam = "datastar"
)

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
	PatchBefore  = datastar.ElementPatchModeBefore  // Insert before element
	PatchAfter   = datastar.ElementPatchModeAfter   // Insert after element
)

// IsDataStar reports whether the request was issued by the Datastar client.
func IsDataStar(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

type sseKey struct{}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

// WithSSE stores an already opened generator in ctx so that responses
// rendered later in the same request reuse it instead of writing the
// stream headers twice.
func WithSSE(ctx context.Context, sse *datastar.ServerSentEventGenerator) context.Context {
	return context.WithValue(ctx, sseKey{}, sse)
}

// SSEFromContext returns the generator stored by WithSSE, if any.
func SSEFromContext(ctx context.Context) (*datastar.ServerSentEventGenerator, bool) {
	sse, ok := ctx.Value(sseKey{}).(*datastar.ServerSentEventGenerator)
	return sse, ok && sse != nil
}

func sseFor(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	if sse, ok := SSEFromContext(r.Context()); ok {
		return sse
	}
	return NewSSE(w, r)
}
