package fsutil

import (
	"context"

	"github.com/giantswarm/fsutil/internal/fileutil"
)

// RemoveResult is the outcome of removing one path passed to RemoveFolders.
// Err is nil when the path no longer exists.
type RemoveResult = fileutil.RemoveResult

// WriteOptions configures WriteFileAtomic. A nil *WriteOptions writes with
// DefaultFileMode and without fsync.
type WriteOptions = fileutil.WriteOptions

// Exists reports whether a filesystem entry is present at path. It never
// fails: any stat error, not only "not exist", yields false.
func Exists(path string) bool {
	return fileutil.Exists(path)
}

// CanAccessFile reports whether path is non-empty and exists according to an
// access check. The file is not opened, so the check cannot block on special
// files. Errors are reported as false.
func CanAccessFile(path string) bool {
	return fileutil.CanAccessFile(path)
}

// MkdirIfNeeded makes sure the directory that would contain filePath exists,
// creating missing parents. Failures, such as trying to create a volume root
// on Windows, are ignored.
func MkdirIfNeeded(filePath string) {
	fileutil.MkdirIfNeeded(filePath)
}

// RemoveFolders recursively removes every path concurrently and returns once
// all removals have finished. results[i] describes paths[i]; one failing
// path never prevents the others from being removed.
//
// Transient failures (busy or locked files) are retried with backoff, see
// WithMaxRetries and WithRetryDelay. Canceling ctx stops pending retries.
func RemoveFolders(ctx context.Context, paths []string, opts ...RemoveOption) []RemoveResult {
	cfg := applyRemoveOptions(opts)
	return cfg.RemoveFolders(ctx, paths)
}

// RemoveFolder is RemoveFolders for a single path.
func RemoveFolder(ctx context.Context, path string, opts ...RemoveOption) error {
	cfg := applyRemoveOptions(opts)
	return cfg.RemoveFolder(ctx, path)
}

// CopyFileAndMakeWritable copies from to to byte for byte and then sets the
// mode of to to WritableFileMode, regardless of from's permissions. The
// destination's parent directories are created if missing.
func CopyFileAndMakeWritable(from, to string) error {
	return fileutil.CopyFileAndMakeWritable(from, to)
}

// SanitizeForFilePath turns s into a string usable as a single path segment
// by replacing each run of ASCII control characters, punctuation other than
// '-', and DEL with one '-'. Letters, digits, '-' and non-ASCII characters
// are kept.
func SanitizeForFilePath(s string) string {
	return fileutil.SanitizeForFilePath(s)
}

// WriteFileAtomic replaces the content of path with data so that readers
// never observe a partial write. The data is written to "<path>-<uuid>" and
// renamed over path; the parent directory must exist.
//
// On failure path is untouched and the temporary file is removed.
func WriteFileAtomic(path string, data []byte, opts *WriteOptions) error {
	return fileutil.WriteFileAtomic(path, data, opts)
}

// WriteFileAtomicLocked is WriteFileAtomic under an exclusive advisory lock
// on path+".lock", so concurrent writers (including other processes using
// this function) apply their updates one at a time. Waiting for the lock
// honors ctx.
func WriteFileAtomicLocked(ctx context.Context, path string, data []byte, opts *WriteOptions) error {
	return fileutil.WriteFileAtomicLocked(ctx, path, data, opts)
}
