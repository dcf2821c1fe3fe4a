// Package fsutil provides filesystem helpers for preparing and tearing down
// scratch state: profile directories, test artifacts, generated reports.
//
// # Basic Usage
//
//	import "github.com/giantswarm/fsutil"
//
//	out := filepath.Join(artifactsDir, fsutil.SanitizeForFilePath(t.Name()), "trace.json")
//	fsutil.MkdirIfNeeded(out)
//	if err := fsutil.WriteFileAtomic(out, data, nil); err != nil {
//	    return err
//	}
//
//	for _, res := range fsutil.RemoveFolders(ctx, []string{profileDir, cacheDir}) {
//	    if res.Err != nil {
//	        log.Printf("cleanup %s: %v", res.Path, res.Err)
//	    }
//	}
//
// # Error Policy
//
// Exists, CanAccessFile and MkdirIfNeeded are best-effort and have no error
// return. RemoveFolders never fails as a whole; it reports one RemoveResult
// per input path. CopyFileAndMakeWritable and WriteFileAtomic return the
// first error encountered, wrapped so errors.Is works against io/fs errors
// and the sentinels declared in this package.
//
// # Atomic Writes
//
// WriteFileAtomic stages data in "<name>-<uuid>" next to the target and
// renames it into place, so concurrent readers see either the old or the new
// content. WriteFileAtomicLocked additionally serializes writers, across
// processes, with an advisory lock on "<name>.lock".
package fsutil
