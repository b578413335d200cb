// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/rwserver/core/logger"
//
//	// Development: text format, debug level, source locations
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithLevelString(os.Getenv("LOG_LEVEL")),
//	)
//
//	log.Info("Server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//		logger.Addr(":8080"),
//	)
//
// Library packages default to Nop() so nothing is written until a logger is injected.
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for missing values, which slog omits:
//
//	log.Error("Shutdown failed", logger.Error(err)) // err may be nil
//
//	log.Info("Request processed",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(status),
//		logger.Elapsed(start),
//	)
package logger
