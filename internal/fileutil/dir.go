package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/giantswarm/fsutil/internal/logging"
)

// DirMode is the permission used for directories created by this package.
const DirMode os.FileMode = 0o755

// EnsureDir creates path and any missing parents. An existing directory is
// not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// EnsureDirForFile creates the parent directory of filePath.
func EnsureDirForFile(filePath string) error {
	if err := EnsureDir(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("ensure dir for %s: %w", filePath, err)
	}
	return nil
}

// MkdirIfNeeded creates the parent directory chain of filePath and ignores
// any failure. Creating a volume root fails on some platforms and is not
// actionable here; a later write will surface a real problem. The dropped
// error is logged at debug level.
func MkdirIfNeeded(filePath string) {
	if err := EnsureDirForFile(filePath); err != nil {
		logging.Logger().Debug("ignoring mkdir failure", "path", filePath, "err", err)
	}
}
