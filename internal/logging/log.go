// Package logging holds the logger shared by the fsutil packages.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// custom is the logger installed through Set; nil means use the default.
// It is an atomic pointer so Set may race with logging from RemoveFolders
// goroutines without a mutex on the hot path.
var custom atomic.Pointer[slog.Logger]

// fallback caches slog.Default().With("component", "fsutil") after the first
// Logger call so each call does not allocate a new derived logger. The cost
// is that a later slog.SetDefault is not seen until Set clears the cache,
// which is why Set(nil) is the documented way to pick up a new default.
var fallback atomic.Pointer[slog.Logger]

// Logger returns the logger to use for fsutil diagnostics. It never returns
// nil and is safe for concurrent use.
func Logger() *slog.Logger {
	if l := custom.Load(); l != nil {
		return l
	}
	if l := fallback.Load(); l != nil {
		return l
	}
	l := slog.Default().With("component", "fsutil")
	// CompareAndSwap keeps a logger another goroutine cached concurrently.
	if fallback.CompareAndSwap(nil, l) {
		return l
	}
	// A concurrent Set may have cleared the cache between the CAS and here.
	if l2 := fallback.Load(); l2 != nil {
		return l2
	}
	return l
}

// Set installs l as the fsutil logger. A nil l restores the default.
func Set(l *slog.Logger) {
	custom.Store(l)
	fallback.Store(nil)
}
