// Package logger provides context-aware structured logging backed by logrus.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// G is a short alias for GetLogger.
	G = GetLogger
	// L is the global entry used when the context carries no logger.
	L = logrus.NewEntry(newLogger())
)

type loggerKey struct{}

// WithLogger attaches entry to ctx so that GetLogger returns it.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry.WithContext(ctx))
}

// GetLogger returns the entry stored in ctx, or L bound to ctx.
func GetLogger(ctx context.Context) *logrus.Entry {
	if e, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return e
	}
	return L.WithContext(ctx)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	setFormat(l, "text")
	return l
}

func setFormat(l *logrus.Logger, format string) {
	switch format {
	case "json":
		l.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	default:
		l.Formatter = &logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
			FullTimestamp:   true,
		}
	}
}

// SetLogLevel parses level and applies it to the global logger.
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	L.Logger.SetLevel(lvl)
	return nil
}

// SetLogFormat switches the global logger between "text" and "json".
func SetLogFormat(format string) {
	setFormat(L.Logger, format)
}

// SetLogOutput redirects the global logger.
func SetLogOutput(w io.Writer) {
	L.Logger.SetOutput(w)
}
