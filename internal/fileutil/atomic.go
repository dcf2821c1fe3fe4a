package fileutil

import (
	"fmt"
	"os"

	"github.com/giantswarm/fsutil/internal/logging"
)

// DefaultFileMode is the permission given to files written without an
// explicit mode.
const DefaultFileMode os.FileMode = 0o644

// WriteOptions configures WriteFileAtomic. A nil *WriteOptions means
// DefaultFileMode and no fsync.
type WriteOptions struct {
	Mode *os.FileMode // permissions of the written file, before umask
	Sync bool         // fsync the temp file before renaming it into place
}

func (o *WriteOptions) mode() os.FileMode {
	if o == nil || o.Mode == nil {
		return DefaultFileMode
	}
	return *o.Mode
}

func (o *WriteOptions) sync() bool {
	return o != nil && o.Sync
}

// WriteFileAtomic writes data to a temp file in the same directory as path
// and renames it over path. Readers of path observe either its previous
// content or data, never a partial write.
//
// The file is created with opts' mode filtered through the process umask.
// The parent directory must already exist. If any step fails the temp file
// is removed and path is left untouched.
func WriteFileAtomic(path string, data []byte, opts *WriteOptions) (retErr error) {
	if path == "" {
		return ErrEmptyPath
	}

	f, err := createTempSibling(path, opts.mode(), false)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpPath := f.Name()
	defer func() {
		if retErr == nil {
			return
		}
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			logging.Logger().Debug("failed to remove temp file", "path", tmpPath, "err", err)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := commitFile(f, path, opts.sync()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
