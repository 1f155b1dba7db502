package testutil

import (
	"path/filepath"
	"runtime"
)

// Path creates a platform-independent path by joining parts with the
// OS-specific separator. Use this in tests instead of hardcoded paths
// like "/report/fixed/reg" so tests pass on Windows.
//
// On Unix, Path("/", "report", "fixed") returns "/report/fixed"
// On Windows, Path("/", "report", "fixed") returns "C:\\report\\fixed"
//
// A leading "/" part marks an absolute path from the root.
func Path(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}

	if parts[0] != "/" {
		return filepath.Join(parts...)
	}

	if runtime.GOOS == "windows" {
		// C: alone would be relative to the drive's working directory
		return "C:\\" + filepath.Join(parts[1:]...)
	}
	return filepath.Join(parts...)
}
