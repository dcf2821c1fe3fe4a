package fileutil

import (
	"fmt"
	"io"
	"os"
)

// WritableFileMode is applied by CopyFileAndMakeWritable: read-write for
// owner and group, read-only for others.
const WritableFileMode os.FileMode = 0o664

// CopyFileOptions configures CopyFile. A nil *CopyFileOptions copies with
// DefaultFileMode, no fsync and no temp file.
type CopyFileOptions struct {
	Mode   *os.FileMode // permissions for a newly created dst (ignored on Windows)
	Sync   bool         // fsync dst before closing
	Atomic bool         // write via a sibling temp file renamed onto dst
}

// CopyFile copies src to dst byte for byte, creating dst's parent
// directories. Copying a file onto itself (including through a symlink) is a
// no-op. If the copy fails after dst was opened, the partial file is removed;
// for a non-atomic copy this deletes a previously existing dst.
//
// The destination is created with the target mode via os.OpenFile and then
// chmodded when atomic, so there is no window where it has broader
// permissions than asked for.
//
// When opts.Atomic is set the data is staged in a temp file next to dst and
// renamed into place after an fsync.
func CopyFile(src, dst string, opts *CopyFileOptions) (retErr error) {
	if src == "" {
		return ErrEmptySrc
	}
	if dst == "" {
		return ErrEmptyDst
	}

	var o CopyFileOptions
	if opts != nil {
		o = *opts
	}

	if err := EnsureDirForFile(dst); err != nil {
		return fmt.Errorf("prepare destination: %w", err)
	}

	srcFile, err := os.Open(src) //nolint:gosec // G304: caller-supplied path
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() {
		if closeErr := srcFile.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close source: %w", closeErr)
		}
	}()

	same, err := sameFile(srcFile, dst)
	if err != nil {
		return err
	}
	if same {
		return nil
	}

	mode := DefaultFileMode
	if o.Mode != nil {
		mode = *o.Mode
	}

	dstFile, err := openCopyDst(dst, mode, o.Atomic)
	if err != nil {
		return err
	}
	// On failure remove whatever was written, dst itself included for a
	// non-atomic copy: a truncated dst is worse than a missing one.
	writePath := dstFile.Name()
	defer func() {
		if retErr != nil {
			_ = os.Remove(writePath)
		}
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("copy: %w", err)
	}

	return commitFile(dstFile, dst, o.Sync || o.Atomic)
}

// CopyFileAndMakeWritable copies from to to and then sets to's mode to
// WritableFileMode, whatever the mode of from or of an existing to.
func CopyFileAndMakeWritable(from, to string) error {
	if err := CopyFile(from, to, nil); err != nil {
		return fmt.Errorf("copy %s to %s: %w", from, to, err)
	}
	if err := os.Chmod(to, WritableFileMode); err != nil {
		return fmt.Errorf("make %s writable: %w", to, err)
	}
	return nil
}

// sameFile reports whether dst already refers to the open source file.
func sameFile(src *os.File, dst string) (bool, error) {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat destination: %w", err)
	}
	srcInfo, err := src.Stat()
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}
	return os.SameFile(srcInfo, dstInfo), nil
}

// openCopyDst opens the file the copy is written to: a fresh temp sibling
// when atomic, dst itself (truncated) otherwise.
func openCopyDst(dst string, mode os.FileMode, atomic bool) (*os.File, error) {
	if atomic {
		return createTempSibling(dst, mode, true)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // G304: caller-supplied path
	if err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}
	return f, nil
}
