// Package logger builds configured log/slog loggers with consistent
// attribute helpers.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("service", "web")),
//	)
//
// NewFromConfig reads LOG_LEVEL and LOG_FORMAT from the environment via the
// config package. The attribute helpers (Error, SessionID, Component) keep
// key names uniform across the module so logs aggregate cleanly.
package logger
