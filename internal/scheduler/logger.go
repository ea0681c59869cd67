package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// slogLogger routes cron's own logging through slog.
type slogLogger struct {
	log *slog.Logger
}

var _ cron.Logger = slogLogger{}

func (l slogLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
