package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"moneymoves/pkg/game/config"
)

// Setup configures the global slog logger based on environment.
// Logs go to stderr.
func Setup(cfg *config.Config) *slog.Logger {
	return SetupWriter(cfg, os.Stderr)
}

// SetupForTerminal is Setup for when a surface draws on the terminal in raw
// mode. Logs are appended to cfg.LogFile, or dropped when it is empty.
// The returned func closes the file.
func SetupForTerminal(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return SetupWriter(cfg, io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return SetupWriter(cfg, f), f.Close, nil
}

// SetupWriter is Setup with an explicit destination
func SetupWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
