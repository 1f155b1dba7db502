package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ in a path to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Resolve expands a leading ~ and cleans the result.
// Relative paths stay relative to the working directory; empty stays empty.
func Resolve(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(ExpandTilde(path))
}
