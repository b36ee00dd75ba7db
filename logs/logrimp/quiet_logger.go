package logrimp

import (
	"github.com/go-logr/logr"
)

// quietSink is a logr.LogSink which drops informational messages and keeps errors.
type quietSink struct {
	logger logr.Logger
}

func (q *quietSink) Init(_ logr.RuntimeInfo) {
	// ignored.
}

// Enabled reports false so callers skip building Info messages entirely.
func (q *quietSink) Enabled(int) bool {
	return false
}

func (q *quietSink) Info(_ int, _ string, _ ...any) {
	// Dropped.
}

func (q *quietSink) Error(err error, msg string, keysAndValues ...any) {
	q.logger.Error(err, msg, keysAndValues...)
}

func (q *quietSink) WithValues(keysAndValues ...any) logr.LogSink {
	q.logger.WithValues(keysAndValues...)
	return q
}

func (q *quietSink) WithName(name string) logr.LogSink {
	q.logger.WithName(name)
	return q
}

// NewQuietLogger returns a quiet logger which only logs errors.
func NewQuietLogger(logger logr.Logger) logr.Logger {
	return logr.New(&quietSink{logger: logger})
}
