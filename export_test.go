package fsutil

import "time"

// RemoveConfigSnapshot exposes the fields RemoveOption closures set, so the
// external test package can check them without reaching into internals.
type RemoveConfigSnapshot struct {
	MaxRetries int
	RetryDelay time.Duration
}

// ApplyRemoveOptionsForTesting applies opts to the defaults and returns the
// result.
func ApplyRemoveOptionsForTesting(opts ...RemoveOption) RemoveConfigSnapshot {
	cfg := applyRemoveOptions(opts)
	return RemoveConfigSnapshot{
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	}
}
