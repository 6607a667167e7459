package codeshot

import (
	"log/slog"
	"sync/atomic"

	"github.com/codyrobertson/codeshot/internal/logging"
)

// loggerPtr stores the default logger. Accessed atomically so that
// SetLogger can be called concurrently with New from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.Nop())
}

// SetLogger sets the logger used by renderers created without WithLogger.
// By default codeshot produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by codeshot:
//   - [slog.LevelDebug]: cache tier hits and emoji fetches
//   - [slog.LevelWarn]: degraded renders (theme, font or shader fallback,
//     unreachable emoji CDN, unusable cache directory)
//
// Example:
//
//	codeshot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(logging.OrNop(l))
}

// Logger returns the default logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
