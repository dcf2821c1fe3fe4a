package fsutil

import "github.com/giantswarm/fsutil/internal/fileutil"

// Sentinel errors for error inspection with errors.Is.
const (
	// ErrEmptySrc is returned by CopyFileAndMakeWritable for an empty source path.
	ErrEmptySrc = fileutil.ErrEmptySrc

	// ErrEmptyDst is returned by CopyFileAndMakeWritable for an empty
	// destination path.
	ErrEmptyDst = fileutil.ErrEmptyDst

	// ErrEmptyPath is returned by WriteFileAtomic and WriteFileAtomicLocked
	// for an empty target path.
	ErrEmptyPath = fileutil.ErrEmptyPath

	// ErrLockNotAcquired is returned by WriteFileAtomicLocked when the lock
	// could not be taken and the context was not done.
	ErrLockNotAcquired = fileutil.ErrLockNotAcquired
)
