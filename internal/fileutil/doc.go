// Package fileutil implements the filesystem helpers exposed by fsutil.
//
// Helpers fall into two groups. Best-effort helpers (Exists, CanAccessFile,
// MkdirIfNeeded, RemoveFolders) never return an error to the caller: checks
// collapse failures into false, MkdirIfNeeded logs and drops the error, and
// RemoveFolders reports one outcome per path. Mutating helpers with
// correctness requirements (CopyFile, CopyFileAndMakeWritable,
// WriteFileAtomic) return the first error they hit, wrapped with the step
// that failed.
//
// Atomic writes go through a sibling temp file named "<base>-<uuid>" that is
// renamed over the destination, so readers see either the old or the new
// content and never a prefix of it.
package fileutil
