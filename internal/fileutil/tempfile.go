package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// tempSiblingPath returns "<dir>/<base>-<uuid>" for dst. The temp file must
// live in dst's directory: rename is only atomic within one filesystem, and
// a temp file under os.TempDir may sit on a different volume.
func tempSiblingPath(dst string) string {
	return filepath.Join(filepath.Dir(dst), filepath.Base(dst)+"-"+uuid.NewString())
}

// createTempSibling exclusively creates a temp file next to dst. O_EXCL
// guards against reusing a stale temp file left by a crashed writer.
//
// With exactMode the file is chmodded to mode after creation, so the result
// carries exactly mode regardless of the process umask. Without it the umask
// applies, as it does for os.WriteFile.
func createTempSibling(dst string, mode os.FileMode, exactMode bool) (*os.File, error) {
	tmpPath := tempSiblingPath(dst)
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode) //nolint:gosec // G304: derived from caller's dst
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if !exactMode {
		return f, nil
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("chmod temp file: %w", err)
	}
	return f, nil
}

// commitFile optionally fsyncs f, closes it, and renames it to dst when it is
// a temp file. f is always closed on return.
//
// Callers ask for a sync on every atomic write: without fsync before rename,
// a crash can leave dst pointing at a file whose data never reached disk,
// which defeats the point of the rename.
func commitFile(f *os.File, dst string, doSync bool) error {
	if doSync {
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return fmt.Errorf("sync: %w", err)
		}
	}

	// Close before rename so buffered writes are flushed and, on Windows,
	// the handle no longer pins the temp file.
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.Name(), err)
	}

	if f.Name() != dst {
		if err := os.Rename(f.Name(), dst); err != nil {
			return fmt.Errorf("rename temp file to destination: %w", err)
		}
	}

	return nil
}
