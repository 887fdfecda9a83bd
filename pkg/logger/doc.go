// Package logger builds configured log/slog loggers through functional
// options.
//
// Defaults are production-safe: JSON output at INFO level on stdout. Use
// WithFormat(FormatText) and WithLevel(slog.LevelDebug) during development.
//
// # Usage
//
//	import (
//	    "log/slog"
//	    "github.com/dmitrymomot/mongokit/pkg/logger"
//	)
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("service", "billing")),
//	)
package logger
