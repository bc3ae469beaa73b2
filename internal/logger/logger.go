package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	loggerKey    ctxKey = "logger"
)

// InitLogger configures the default slog logger from cfg, writing to stdout and,
// when cfg.Dir is set, to a size-rotated log file. The returned closer flushes
// the file writer and must be called on shutdown.
func InitLogger(cfg Config) io.Closer {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.Dir != "" {
		file := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, DefaultLogFileName),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		w = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	InitLoggerWithWriter(cfg, w)
	return closer
}

// InitLoggerWithWriter configures the default slog logger to write to w
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetRequestID returns the request ID or an empty string
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// WithLogger stores a logger carrying extra attributes in the context
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored with WithLogger, or the default logger
// with the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}
