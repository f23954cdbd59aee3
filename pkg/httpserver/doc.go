// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled or the process receives SIGINT or
// SIGTERM; in-flight requests get ShutdownTimeout to finish.
// HealthCheckHandler provides liveness and readiness endpoints.
package httpserver
