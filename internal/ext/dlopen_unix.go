//go:build darwin || freebsd || linux || netbsd

package ext

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/phpx-labs/cargo-php/internal/branding"
)

// cDescription mirrors the struct the describe function returns:
//
//	struct { const char *version; const char *name; const char *module; }
type cDescription struct {
	Version *byte
	Name    *byte
	Module  *byte
}

// dlopen is the only place foreign memory is read. It loads path, calls the
// describe symbol once, and copies every string out before returning.
func dlopen(path string, preload []string) (*Raw, error) {
	for _, dep := range preload {
		if _, err := purego.Dlopen(dep, purego.RTLD_LAZY|purego.RTLD_GLOBAL); err != nil {
			return nil, fmt.Errorf("%w: preloading %s: %w", ErrLoad, dep, err)
		}
	}

	// RTLD_LAZY defers PHP function symbols the extension imports but never
	// calls while describing itself.
	lib, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	symbol := branding.DescribeSymbol()
	sym, err := purego.Dlsym(lib, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEntryPoint, symbol, err)
	}

	var describe func() *cDescription
	purego.RegisterFunc(&describe, sym)

	d := describe()
	if d == nil {
		return nil, fmt.Errorf("%w: %s returned null", ErrEntryPoint, symbol)
	}

	return &Raw{
		Version: goString(d.Version),
		Name:    goString(d.Name),
		Module:  goString(d.Module),
	}, nil
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
