//go:build !(darwin || freebsd || linux || netbsd)

package ext

import (
	"fmt"
	"runtime"
)

func dlopen(path string, _ []string) (*Raw, error) {
	return nil, fmt.Errorf("%w: %s: dynamic loading is not supported on %s", ErrLoad, path, runtime.GOOS)
}
