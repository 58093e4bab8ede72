package internal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures where decomposition diagnostics go. By default nothing
// is logged. Pass nil to go back to silence.
//
// Levels used:
//   - [slog.LevelDebug]: every cut found, skipped parallel line pairs
//   - [slog.LevelWarn]: discarded extra cuts, branches that stopped early
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}
