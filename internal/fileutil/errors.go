package fileutil

import "github.com/giantswarm/fsutil/internal/sentinel"

// ErrEmptySrc is returned when a source path is empty.
const ErrEmptySrc = sentinel.Error("source path must not be empty")

// ErrEmptyDst is returned when a destination path is empty.
const ErrEmptyDst = sentinel.Error("destination path must not be empty")

// ErrEmptyPath is returned by WriteFileAtomic for an empty target path.
const ErrEmptyPath = sentinel.Error("path must not be empty")

// ErrLockNotAcquired is returned when the advisory lock could not be taken
// and the context gave no reason.
const ErrLockNotAcquired = sentinel.Error("lock not acquired")
