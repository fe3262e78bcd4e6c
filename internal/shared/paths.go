package shared

import (
	"path/filepath"
	"strings"
)

// JoinPath joins path elements and collapses "." and ".." segments.
func JoinPath(base string, elems ...string) string {
	return filepath.Join(append([]string{base}, elems...)...)
}

// NormalizePath cleans a path string without consulting the filesystem.
// An empty input stays empty.
func NormalizePath(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return filepath.Clean(value)
}

// ResolvePath anchors a relative path at base. Absolute paths are only
// normalized.
func ResolvePath(base string, value string) string {
	if filepath.IsAbs(value) || base == "" {
		return NormalizePath(value)
	}
	return JoinPath(base, value)
}
