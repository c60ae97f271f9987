package interngo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with interngo-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithType adds a type field to the logger (useful for tagging one
// partition's operations).
func (l *Logger) WithType(typeName string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", typeName),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogPartitionCreated logs the lazy creation of a type partition.
func (l *Logger) LogPartitionCreated(typeName string) {
	l.Debug("partition created",
		"type", typeName,
	)
}

// LogIntern logs the creation of a new slot. Intern hits are not logged;
// they are far too hot and carry no new information.
func (l *Logger) LogIntern(typeName string, hash uint64) {
	l.Debug("value interned",
		"type", typeName,
		"hash", hash,
	)
}

// LogGC logs a completed sweep.
func (l *Logger) LogGC(reclaimed int, duration time.Duration) {
	l.Debug("gc completed",
		"reclaimed", reclaimed,
		"duration", duration,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(removed int, duration time.Duration) {
	l.Info("store cleared",
		"removed", removed,
		"duration", duration,
	)
}

// LogAutoSweep logs a release-triggered background sweep. Paced, so at
// most one line per pacing window.
func (l *Logger) LogAutoSweep(releases int64) {
	l.Debug("auto-sweep triggered",
		"releases", releases,
	)
}

// LogSweeperStarted logs the start of the background sweeper.
func (l *Logger) LogSweeperStarted(interval time.Duration) {
	l.Info("sweeper started",
		"interval", interval,
	)
}

// LogSweeperStopped logs the stop of the background sweeper.
func (l *Logger) LogSweeperStopped() {
	l.Info("sweeper stopped")
}
