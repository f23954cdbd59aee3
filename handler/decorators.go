package handler

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/donorkit/pkg/logger"
)

// Logged logs every call of the handler at debug level, with the time the
// handler took to produce its response. Rendering is not included.
func Logged[C Context, R any](log *slog.Logger, name string) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "interaction handled",
				logger.Handler(name),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
