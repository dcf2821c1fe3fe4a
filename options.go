package fsutil

import (
	"fmt"
	"time"

	"github.com/giantswarm/fsutil/internal/fileutil"
)

// removeConfig holds the settings for one RemoveFolders call.
type removeConfig struct {
	fileutil.Remover
}

func defaultRemoveConfig() removeConfig {
	return removeConfig{Remover: *fileutil.NewRemover()}
}

// RemoveOption configures RemoveFolders and RemoveFolder.
//
// Option constructors panic on invalid input. Values are almost always
// constants, so a bad one is a programmer error, in the same way as
// [regexp.MustCompile].
type RemoveOption func(*removeConfig)

// WithMaxRetries sets how many times a path is retried after its first
// removal attempt fails with a transient error. 0 disables retries.
//
// Default: 10.
//
// Panics if n < 0.
func WithMaxRetries(n int) RemoveOption {
	if n < 0 {
		panic(fmt.Sprintf("fsutil: max retries must not be negative, got %d", n))
	}
	return func(c *removeConfig) {
		c.MaxRetries = n
	}
}

// WithRetryDelay sets the wait before the first retry. Later waits grow by a
// factor of 1.2 with a little jitter.
//
// Default: 100ms.
//
// Panics if d <= 0.
func WithRetryDelay(d time.Duration) RemoveOption {
	if d <= 0 {
		panic(fmt.Sprintf("fsutil: retry delay must be greater than 0, got %v", d))
	}
	return func(c *removeConfig) {
		c.RetryDelay = d
	}
}

func applyRemoveOptions(opts []RemoveOption) removeConfig {
	cfg := defaultRemoveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
