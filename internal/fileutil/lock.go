package fileutil

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/giantswarm/fsutil/internal/logging"
)

// LockRetryInterval is how often a held lock is polled.
const LockRetryInterval = 50 * time.Millisecond

// LockPath returns the advisory lock file used to serialize writers of path.
func LockPath(path string) string {
	return path + ".lock"
}

// WriteFileAtomicLocked is WriteFileAtomic performed while holding an
// exclusive flock on LockPath(path). Waiting for the lock honors ctx. The
// lock file is left in place after release so a concurrent holder's lock is
// never invalidated by an unlink.
func WriteFileAtomicLocked(ctx context.Context, path string, data []byte, opts *WriteOptions) error {
	if path == "" {
		return ErrEmptyPath
	}

	fl, err := acquireFileLock(ctx, LockPath(path))
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer releaseFileLock(fl)

	return WriteFileAtomic(path, data, opts)
}

// acquireFileLock takes an exclusive lock on lockPath, retrying every
// LockRetryInterval until it succeeds or ctx is done.
func acquireFileLock(ctx context.Context, lockPath string) (*flock.Flock, error) {
	fl := flock.New(lockPath)

	locked, err := fl.TryLockContext(ctx, LockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquire file lock %s: %w", lockPath, err)
	}
	if !locked {
		// TryLockContext reports failure through err in practice; handle a
		// bare (false, nil) anyway so callers always get a reason.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("acquire file lock %s: %w", lockPath, ctx.Err())
		}
		return nil, fmt.Errorf("acquire file lock %s: %w", lockPath, ErrLockNotAcquired)
	}

	return fl, nil
}

// releaseFileLock closes fl. Close calls Unlock internally, so no explicit
// Unlock is needed. The lock file stays on disk: unlinking it could let a
// waiter lock the old inode while a newcomer creates and locks a new one,
// and both would believe they hold the lock. Errors are only logged because
// the write has already completed by the time the lock is released.
func releaseFileLock(fl *flock.Flock) {
	if err := fl.Close(); err != nil {
		logging.Logger().Debug("failed to release file lock", "path", fl.Path(), "err", err)
	}
}
