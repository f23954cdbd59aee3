package handler

import (
	"net/http"
)

// SSEHandler runs for the lifetime of an SSE connection. The connection is
// closed when it returns or the client disconnects (ctx.Done()).
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		ticker := time.NewTicker(time.Second)
//		defer ticker.Stop()
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case t := <-ticker.C:
//				if err := stream.SendSignals(datefmt.Now(t).Signals()); err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "http.error.sse_required")
	}
	ctx, err := NewStreamContext(NewContext(w, r))
	if err != nil {
		return err
	}
	return s.handler(ctx)
}

// SSE creates a response that streams updates through handler.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
