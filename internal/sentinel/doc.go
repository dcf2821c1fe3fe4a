// Package sentinel provides a string-backed error type so that the fsutil
// sentinel errors (empty paths, lock failures) can be declared as constants
// and still be matched with errors.Is through wrapped chains.
package sentinel
