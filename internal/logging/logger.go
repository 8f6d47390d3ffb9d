// Package logging builds the process logger: slog with a JSON or text
// handler, default service attributes and optional rotated file output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"

	configv1 "github.com/joshp123/govee-collector/proto/gen/config/v1"
)

const serviceName = "govee-collector"

// Logger wraps slog.Logger and owns the rotating file, if any.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New configures output, level and format from cfg. A nil cfg logs JSON at
// info level to stdout.
func New(cfg *configv1.LoggingConfig, version string) *Logger {
	var (
		output io.Writer = os.Stdout
		closer io.Closer
	)
	if file := strings.TrimSpace(cfg.GetFile()); file != "" {
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    int(cfg.GetMaxSizeMb()),
			MaxBackups: int(cfg.GetMaxBackups()),
			MaxAge:     int(cfg.GetMaxAgeDays()),
		}
		output = rotating
		closer = rotating
	}

	return &Logger{
		Logger: slog.New(newHandler(output, cfg.GetLevel(), cfg.GetFormat(), version)),
		closer: closer,
	}
}

func newHandler(output io.Writer, level, format, version string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewJSONHandler(output, opts)
	}

	return handler.WithAttrs([]slog.Attr{
		slog.String("service", serviceName),
		slog.String("version", version),
	})
}

// ParseLevel maps debug, warn and error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// With returns a child logger sharing the same output.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), closer: l.closer}
}

// Close flushes and closes the log file. Safe to call when logging to stdout.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
