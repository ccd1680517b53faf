package platform

import (
	"os"
	"runtime"
)

// Chmod sets the permission bits of an installed library or a rewritten
// php.ini. Windows has no Unix permission bits, so there it does nothing.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode.Perm())
}
