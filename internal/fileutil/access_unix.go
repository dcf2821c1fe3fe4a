//go:build !windows

package fileutil

import "golang.org/x/sys/unix"

// canAccess is access(2) with F_OK.
func canAccess(path string) bool {
	return unix.Access(path, unix.F_OK) == nil
}
