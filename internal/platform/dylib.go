package platform

import (
	"runtime"
	"strings"
)

// DLLPrefix returns the file name prefix of shared libraries on this
// platform ("lib" on Unix, empty on Windows).
func DLLPrefix() string { p, _, _ := dylibNaming(runtime.GOOS); return p }

// DLLSuffix returns the shared library suffix including the dot (".so",
// ".dylib" or ".dll").
func DLLSuffix() string { _, s, _ := dylibNaming(runtime.GOOS); return s }

// DLLExtension returns DLLSuffix without the leading dot.
func DLLExtension() string { _, _, e := dylibNaming(runtime.GOOS); return e }

// LibraryFileName returns the file name cargo gives the shared library of the
// crate target name. Hyphens become underscores.
func LibraryFileName(name string) string {
	return libraryFileName(runtime.GOOS, name)
}

func libraryFileName(goos, name string) string {
	prefix, suffix, _ := dylibNaming(goos)
	return prefix + strings.ReplaceAll(name, "-", "_") + suffix
}

func dylibNaming(goos string) (prefix, suffix, ext string) {
	switch goos {
	case "windows":
		return "", ".dll", "dll"
	case "darwin", "ios":
		return "lib", ".dylib", "dylib"
	default:
		return "lib", ".so", "so"
	}
}
