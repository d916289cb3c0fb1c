package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogging configures the global logger. Output always goes to stdout,
// as JSON or, with format "console", through a human-readable console
// writer. When filePath is set JSON lines are also appended to that file.
func InitLogging(filePath, level, format string) {
	var file io.Writer
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", filePath, err)
		} else {
			file = f
		}
	}
	log = newLogger(os.Stdout, file, level, format)
}

func newLogger(stdout, file io.Writer, level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		stdout = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC3339}
	}
	writers := []io.Writer{stdout}
	if file != nil {
		writers = append(writers, file)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(lvl).With().Timestamp().Logger()
}

// SetOutput replaces the logger's writer. Used by tests.
func SetOutput(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// WithRequestID stores the request id in ctx so log lines can carry it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func event(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if id := RequestID(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	return e
}

func DebugLog(ctx context.Context, format string, args ...interface{}) {
	event(ctx, log.Debug()).Msgf(format, args...)
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	event(ctx, log.Info()).Msgf(format, args...)
}

func WarnLog(ctx context.Context, format string, args ...interface{}) {
	event(ctx, log.Warn()).Msgf(format, args...)
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	event(ctx, log.Error()).Msgf(format, args...)
}
