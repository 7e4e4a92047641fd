package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface used across qoiinfo.
// It wraps slog.Logger so commands and handlers can take it as a dependency.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
}

// SlogLogger is a Logger implementation that wraps slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

func New(handler slog.Handler) Logger {
	return &SlogLogger{
		logger: slog.New(handler),
	}
}

// Default logs warnings and above as text to stderr.
func Default() Logger {
	return New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func Text(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func JSON(w io.Writer, level slog.Level) Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
}

// Pretty creates a Logger with colored single-line output for terminals.
func Pretty(w io.Writer, level slog.Level) Logger {
	return New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Rotating writes JSON records to path, rotating the file once it grows past
// maxSizeMB. Old files are gzip-compressed.
func Rotating(path string, maxSizeMB int, level slog.Level) (Logger, io.Closer) {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
	return JSON(w, level), w
}

// Options selects a logger from CLI flags or config.
type Options struct {
	Level  string
	Format string
	File   string
}

// Build returns the logger described by opts. When opts.File is set, records
// go to a rotating file and the returned closer must be closed on exit.
func Build(opts Options, stderr io.Writer) (Logger, io.Closer, error) {
	level := ParseLevel(opts.Level)
	if opts.File != "" {
		l, c := Rotating(opts.File, 0, level)
		return l, c, nil
	}
	switch strings.ToLower(opts.Format) {
	case "", "pretty":
		return Pretty(stderr, level), nopCloser{}, nil
	case "json":
		return JSON(stderr, level), nopCloser{}, nil
	case "text":
		return Text(stderr, level), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown log format %q (want pretty, json or text)", opts.Format)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// FromContext retrieves a Logger from the context.
// If no logger is found, returns a default logger.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return Default()
}

func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

type loggerKey struct{}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{
		logger: l.logger.With(args...),
	}
}

func (l *SlogLogger) WithGroup(name string) Logger {
	return &SlogLogger{
		logger: l.logger.WithGroup(name),
	}
}

// Slog exposes the underlying *slog.Logger for libraries that want one.
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// ParseLevel converts a string level to slog.Level. Unknown levels map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
