package fileutil

import "regexp"

// unsafePathRun matches runs of ASCII control characters, punctuation other
// than '-', and DEL. Letters, digits, '-' and non-ASCII runes pass through.
var unsafePathRun = regexp.MustCompile(`[\x00-\x2C\x2E-\x2F\x3A-\x40\x5B-\x60\x7B-\x7F]+`)

// SanitizeForFilePath replaces each run of unsafe characters in s with a
// single '-', so "a / b" becomes "a-b".
func SanitizeForFilePath(s string) string {
	return unsafePathRun.ReplaceAllLiteralString(s, "-")
}
