package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and provides access to HTTP components.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// SSE returns the Datastar event generator for the request, opening the
	// stream on first use. It is nil for non-Datastar requests.
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext creates a new Context from HTTP request and response writer.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request

	sseOnce sync.Once
	sse     *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// SSE opens the stream lazily so that handlers which fail before producing
// output can still set a status code.
func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if !IsDataStar(c.r) {
		return nil
	}
	c.sseOnce.Do(func() {
		c.sse = sseFor(c.w, c.r)
		c.r = c.r.WithContext(WithSSE(c.r.Context(), c.sse))
	})
	return c.sse
}

func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
