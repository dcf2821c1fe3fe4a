//go:build windows

package fileutil

import "os"

// canAccess falls back to stat; Windows has no access(2) and stat never
// opens the file's data stream.
func canAccess(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
