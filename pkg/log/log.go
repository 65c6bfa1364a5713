// Package log wraps logrus with correlation ids and a quieter development mode.
package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey stores the request correlation id in a context
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// developmentFields are kept in development; everything else is dropped to keep the console readable
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"event":            true,
	"entity":           true,
	"period_id":        true,
}

type logger struct {
	entry *logrus.Entry
}

// L is the process-wide logger
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment reports whether APP_ENV is unset or a development value
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

func keepInDevelopment(key string) bool {
	return developmentFields[key] || strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !keepInDevelopment(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	relevant := make(logrus.Fields)
	for k, v := range fields {
		if keepInDevelopment(k) {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext attaches the correlation id found in ctx, if any
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...interface{}) { l.entry.Debug(args...) }

func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *logger) Info(args ...interface{}) { l.entry.Info(args...) }

func (l *logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *logger) Warn(args ...interface{}) { l.entry.Warn(args...) }

func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *logger) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }

func (l *logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

// WithCorrelationID stores a fresh correlation id in ctx
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext returns L enriched with ctx's correlation id
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
