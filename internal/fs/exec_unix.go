//go:build !windows

package fs

import "os"

// isExecutable checks the Unix execute bits.
func isExecutable(mode os.FileMode) bool {
	return mode&0o111 != 0
}
