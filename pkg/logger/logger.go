// Package logger provides a structured, levelled logger built on log/slog.
//
// Local runs get human-readable text; production gets JSON:
//
//	log := logger.WithCtx(ctx)
//	log.Info("order recorded", "order_id", id, "total", 19.32)
//	// → time=... level=INFO msg="order recorded" order_id=... total=19.32
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/fruitfuel/config"
	"github.com/shashiranjanraj/fruitfuel/pkg/reqid"
)

// L is the process logger. It writes to stderr so command output on stdout
// stays machine-readable.
var L *slog.Logger

func init() {
	Use(New(os.Stderr, config.AppEnv(), config.LogLevel()))
}

// Use replaces the process logger and slog's default.
func Use(l *slog.Logger) {
	L = l
	slog.SetDefault(l)
}

// New builds a logger writing to w. env selects the format and the default
// level; a non-empty level overrides the default.
func New(w io.Writer, env, level string) *slog.Logger {
	production := env == "production" || env == "prod"

	lv := slog.LevelDebug
	if production {
		lv = slog.LevelInfo
	}
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lv = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: lv}
	if production {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ctxKey struct{}

// WithCtx returns the logger stored in ctx by InjectLogger, or the base
// logger, tagged with the context's request_id when there is one.
func WithCtx(ctx context.Context) *slog.Logger {
	log := L
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			log = l
		}
	}
	if id := reqid.FromCtx(ctx); id != "" {
		return log.With("request_id", id)
	}
	return log
}

// InjectLogger stores log into ctx, usually pre-tagged with session attributes.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }
