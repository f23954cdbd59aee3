// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so keys stay consistent across packages.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Development, "donorkit"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "export rendered", logger.ExportFormat("csv"), logger.Rows(12))
//
// Context extractors run on every record, so request-scoped values such as
// the request id are picked up without passing loggers around. Error and
// Errors return an empty attribute for nil errors.
package logger
