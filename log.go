package fsutil

import (
	"log/slog"

	"github.com/giantswarm/fsutil/internal/logging"
)

// SetLogger replaces the logger fsutil writes its diagnostics to. Everything
// fsutil logs is at debug level: errors it deliberately ignores, removal
// retries, and lock release failures.
//
// If l is nil, the logger resets to slog.Default() with a "component"
// attribute, derived on the next use and then cached. Call SetLogger(nil)
// after slog.SetDefault() to pick up the new default.
//
// SetLogger is safe to call concurrently with other fsutil functions.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}
