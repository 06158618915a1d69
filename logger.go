package emojidom

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/emojidom/internal/logx"
)

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logx.Nop())
}

// SetLogger configures the logger used by emojidom and the engines it
// creates afterwards. By default nothing is logged. Pass nil to restore
// the silent default.
//
// Log levels used by emojidom:
//   - [slog.LevelDebug]: per-batch and per-asset detail
//   - [slog.LevelInfo]: engine start and close
//   - [slog.LevelWarn]: degraded operation (assets that cannot be served)
//
// Example:
//
//	emojidom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logx.Nop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages that cannot import the
// root package receive it through their options.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
