package logging

import (
	"io"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/katalvlaran/pathgrid/internal/config"
)

// New builds a slog.Logger writing to w, configured by cfg. The CLI passes
// stderr so log lines never interleave with the rendered board.
// Every record carries cfg.Component when set; at debug level the build's
// Go version and module path are logged once.
func New(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		logger.Debug("logger ready", "go", info.GoVersion, "module", info.Main.Path)
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
