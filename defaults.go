package fsutil

import "github.com/giantswarm/fsutil/internal/fileutil"

// Defaults used when no option overrides them.
const (
	// DefaultRemoveMaxRetries is the number of retries RemoveFolders makes
	// per path after the first attempt fails with a transient error.
	DefaultRemoveMaxRetries = fileutil.DefaultRemoveMaxRetries

	// DefaultRemoveRetryDelay is the wait before the first removal retry.
	// Each later wait is 1.2 times the previous one.
	DefaultRemoveRetryDelay = fileutil.DefaultRemoveRetryDelay

	// DefaultFileMode is the permission WriteFileAtomic gives the target
	// when WriteOptions.Mode is not set.
	DefaultFileMode = fileutil.DefaultFileMode

	// WritableFileMode is the permission CopyFileAndMakeWritable sets on
	// the destination (rw-rw-r--).
	WritableFileMode = fileutil.WritableFileMode

	// DefaultLockRetryInterval is how often WriteFileAtomicLocked polls a
	// lock held by someone else.
	DefaultLockRetryInterval = fileutil.LockRetryInterval
)
