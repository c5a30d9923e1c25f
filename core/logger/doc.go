// Package logger builds slog loggers and provides attribute helpers with
// consistent keys for the dispatch pipeline.
//
// Create a logger with the factory function:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSON(),
//	)
//
// Attribute helpers keep keys uniform across components:
//
//	log.Info("request served",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(resp.StatusCode),
//		logger.Elapsed(start),
//	)
//
// Helpers that wrap optional values (Error, RequestID) return an empty
// slog.Attr when the value is absent, so call sites never need nil checks.
package logger
