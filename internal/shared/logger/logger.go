package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger based on environment
func Setup(env string) {
	logger := New(env, os.Stdout)
	slog.SetDefault(logger)

	slog.Info("logger initialized", "env", env)
}

// New builds the environment's handler on top of w
func New(env string, w io.Writer) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		handler = slog.NewJSONHandler(w, opts)
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
