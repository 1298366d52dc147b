package peck

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/peck/driver"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger
// can be called concurrently with logging from the loop thread.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for peck and its driver packages.
// By default peck produces no log output. Pass nil to restore the
// default silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: loop diagnostics (frame dispatch, suppressed resizes)
//   - [slog.LevelInfo]: lifecycle events (driver selected, surface created)
//   - [slog.LevelError]: fatal conditions just before the loop terminates
//
// Example:
//
//	peck.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	driver.SetLogger(l)
}

// Logger returns the current logger used by peck.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
