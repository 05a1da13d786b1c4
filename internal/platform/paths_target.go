//go:build !simulator

package platform

import (
	"path/filepath"
	"runtime"
)

// Target runtime status file directories
const (
	LinuxStateDir    = "/var/lib/update_tracker"
	FallbackStateDir = "/tmp"
)

// DefaultStatusPath returns the status file location for target builds: the
// persistent system path on Linux, a temporary path elsewhere.
func DefaultStatusPath() string {
	if runtime.GOOS == "linux" {
		return filepath.Join(LinuxStateDir, StatusFileName)
	}
	return filepath.Join(FallbackStateDir, StatusFileName)
}
