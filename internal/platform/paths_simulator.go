//go:build simulator

package platform

// DefaultStatusPath returns the status file location for simulator builds:
// the working directory, next to the binary.
func DefaultStatusPath() string {
	return StatusFileName
}
