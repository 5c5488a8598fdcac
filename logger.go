package rcv1go

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with loader-specific helpers so log fields stay
// consistent across fetch, parse, and cache operations.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogFetch logs one archive retrieval.
func (l *Logger) LogFetch(ctx context.Context, name string, bytes int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "archive fetch failed",
			"archive", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "archive fetched",
			"archive", name,
			"bytes", bytes,
			"duration", d,
		)
	}
}

// LogParse logs one parsed component.
func (l *Logger) LogParse(ctx context.Context, component string, rows, nnz int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parse failed",
			"component", component,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parse completed",
			"component", component,
			"rows", rows,
			"nnz", nnz,
		)
	}
}

// LogCache logs a cache lookup.
func (l *Logger) LogCache(ctx context.Context, key string, hit bool) {
	l.DebugContext(ctx, "cache lookup",
		"key", key,
		"hit", hit,
	)
}

// LogAlign logs the ordering alignment step.
func (l *Logger) LogAlign(ctx context.Context, docs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ordering alignment failed",
			"docs", docs,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "orderings aligned",
			"docs", docs,
		)
	}
}
