package picture

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/picture/internal/parallel"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

// poolPtr stores the worker pool used for per-row operators.
// nil means operators run on the calling goroutine.
var poolPtr atomic.Pointer[parallel.WorkerPool]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for picture and its sub-packages.
// By default, picture produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by picture:
//   - [slog.LevelDebug]: per-operator details (sizes, kernel shape)
//   - [slog.LevelInfo]: pipeline lifecycle (load, save)
//   - [slog.LevelWarn]: recoverable oddities (blend inputs of differing sizes)
//
// Example:
//
//	picture.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by picture.
// Sub-packages call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// SetWorkers sets how many goroutines operators may use to fill rows.
// n <= 1 restores the default single-threaded behavior. The previous
// pool, if any, is closed after its queued work finishes, so SetWorkers
// must not be called while operators are running.
func SetWorkers(n int) {
	var next *parallel.WorkerPool
	if n > 1 {
		next = parallel.NewWorkerPool(n)
	}
	if prev := poolPtr.Swap(next); prev != nil {
		prev.Close()
	}
	Logger().Debug("picture: workers configured", "workers", max(n, 1))
}

// Workers returns the number of goroutines operators use.
func Workers() int {
	if p := poolPtr.Load(); p != nil {
		return p.Workers()
	}
	return 1
}

// rows runs fn over row bands of [0, height) using the configured pool.
func rows(height int, fn func(y0, y1 int)) {
	parallel.Rows(poolPtr.Load(), height, fn)
}
