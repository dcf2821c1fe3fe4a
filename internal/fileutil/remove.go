package fileutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/giantswarm/fsutil/internal/logging"
)

// Removal retry defaults.
const (
	DefaultRemoveMaxRetries = 10
	DefaultRemoveRetryDelay = 100 * time.Millisecond

	removeBackoffFactor = 1.2
	removeBackoffJitter = 0.1
)

// RemoveResult is the outcome of removing one path. A nil Err means the path
// is gone (or never existed).
type RemoveResult struct {
	Path string
	Err  error
}

// Remover deletes directory trees, retrying failures that are usually
// transient (a file briefly held open, descriptor exhaustion).
type Remover struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// RetryDelay is the wait before the first retry; later waits grow by 1.2x.
	RetryDelay time.Duration
	// RemoveAll performs a single removal attempt. Nil means os.RemoveAll.
	RemoveAll func(path string) error
}

// NewRemover returns a Remover using the package defaults.
func NewRemover() *Remover {
	return &Remover{
		MaxRetries: DefaultRemoveMaxRetries,
		RetryDelay: DefaultRemoveRetryDelay,
	}
}

// RemoveFolders removes every path concurrently and waits for all of them.
// It never stops early: results[i] always describes paths[i].
func (r *Remover) RemoveFolders(ctx context.Context, paths []string) []RemoveResult {
	results := make([]RemoveResult, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			results[i] = RemoveResult{Path: path, Err: r.RemoveFolder(ctx, path)}
			return nil
		})
	}

	// Every goroutine returns nil; outcomes live in results.
	_ = g.Wait()
	return results
}

// RemoveFolder removes path and everything below it. A missing path is not
// an error. Transient failures are retried up to MaxRetries times with
// exponential backoff; the last failure is returned wrapped.
func (r *Remover) RemoveFolder(ctx context.Context, path string) error {
	removeAll := r.RemoveAll
	if removeAll == nil {
		removeAll = os.RemoveAll
	}

	backoff := wait.Backoff{
		Duration: r.RetryDelay,
		Factor:   removeBackoffFactor,
		Jitter:   removeBackoffJitter,
		Steps:    max(r.MaxRetries, 0) + 1,
	}

	log := logging.Logger()
	var lastErr error
	attempt := 0
	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(context.Context) (bool, error) {
		attempt++
		lastErr = removeAll(path)
		if lastErr == nil {
			return true, nil
		}
		if !isTransientRemoveErr(lastErr) {
			return false, lastErr
		}
		log.Debug("folder removal failed, retrying", "path", path, "attempt", attempt, "err", lastErr)
		return false, nil
	})

	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return fmt.Errorf("remove %s: %w", path, errors.Join(ctx.Err(), lastErr))
	case wait.Interrupted(err) && lastErr != nil:
		return fmt.Errorf("remove %s after %d attempts: %w", path, attempt, lastErr)
	default:
		return fmt.Errorf("remove %s: %w", path, err)
	}
}

// isTransientRemoveErr reports whether a removal error is worth retrying.
func isTransientRemoveErr(err error) bool {
	for _, errno := range []syscall.Errno{
		syscall.EBUSY,
		syscall.EMFILE,
		syscall.ENFILE,
		syscall.ENOTEMPTY,
		syscall.EPERM,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
