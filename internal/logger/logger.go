package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jwebster45206/doom-launchers/internal/config"
)

// Setup configures the global slog logger based on environment. Logs go to
// stderr; stdout carries the generator's progress lines.
func Setup(cfg *config.Config) *slog.Logger {
	logger := New(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w without touching the global logger.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithRunID tags every record of one generator run.
func WithRunID(logger *slog.Logger) *slog.Logger {
	return logger.With("run_id", uuid.NewString())
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
