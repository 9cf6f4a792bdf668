package sprig

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards everything. Enabled reports
// false so disabled log calls skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Atomic so SetLogger may be called from
// a goroutine other than the one ticking sprites (e.g. a reload watcher).
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by sprig. By default sprig is silent.
// Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: animation completion, store reloads
//   - [slog.LevelWarn]: atlas lookup misses, nine-slice insets larger than
//     the source image
//
// Example:
//
//	sprig.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Subpackages such as sprig/ecs use it to
// share the caller's configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
