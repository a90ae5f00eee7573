package internal

import (
	"log/slog"
	"sync/atomic"
)

// read from timer goroutines, hence atomic
var logger atomic.Pointer[slog.Logger]

// Logger returns the package logger, slog.Default() unless overridden.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return slog.Default()
}

// SetLogger overrides the package logger. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}
