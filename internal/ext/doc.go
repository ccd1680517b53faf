// Package ext loads a compiled PHP extension into the current process and
// extracts the description of the module it registers. The description is
// trusted only when the extension was built against a compatible version of
// the introspection contract.
//
// All unsafe code lives in dlopen_unix.go: it opens the library, resolves the
// describe symbol, calls it, and copies the returned strings into Go memory
// before returning. Nothing outside that file touches a foreign pointer.
package ext
