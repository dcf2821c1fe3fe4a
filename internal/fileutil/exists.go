package fileutil

import (
	"errors"
	"io/fs"
	"os"

	"github.com/giantswarm/fsutil/internal/logging"
)

// Exists reports whether anything is present at path. Every stat error,
// including permission errors, is reported as false.
func Exists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		logging.Logger().Debug("stat failed, treating as absent", "path", path, "err", err)
	}
	return false
}

// CanAccessFile reports whether path is non-empty and passes an existence
// access check. Only existence is tested: the file is never opened, so a
// FIFO without a writer cannot block the caller, and a file the caller may
// not read still counts as accessible.
func CanAccessFile(path string) bool {
	if path == "" {
		return false
	}
	return canAccess(path)
}
