//go:build windows

package fs

import "os"

// isExecutable always reports false on Windows; the permission model has no
// equivalent of the Unix execute bit.
func isExecutable(_ os.FileMode) bool {
	return false
}
