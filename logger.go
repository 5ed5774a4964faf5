package staticgraph

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with staticgraph-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPrefix adds the graph file prefix to the logger.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{
		Logger: l.Logger.With("prefix", prefix),
	}
}

// LogOpen logs a graph open.
func (l *Logger) LogOpen(ctx context.Context, nodes, edges int, access AccessPattern, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph open failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "graph opened",
		"nodes", nodes,
		"edges", edges,
		"access", access.String(),
		"took", took,
	)
}

// LogValidate logs a validation pass.
func (l *Logger) LogValidate(ctx context.Context, level ValidationLevel, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph validation failed",
			"level", level.String(),
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "graph validated",
		"level", level.String(),
		"took", took,
	)
}

// LogWrite logs a WriteFiles call.
func (l *Logger) LogWrite(ctx context.Context, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph write failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "graph written",
		"bytes", bytes,
	)
}

// LogClose logs the release of the last graph holder.
func (l *Logger) LogClose(err error) {
	if err != nil {
		l.Error("graph close failed", "error", err)
		return
	}
	l.Debug("graph closed")
}
