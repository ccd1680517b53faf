//go:build darwin || freebsd || linux || netbsd

package ext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDlopen_NotALibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libbogus.so")
	if err := os.WriteFile(path, []byte("definitely not an ELF or Mach-O file"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader().Describe(path)
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("Describe() error = %v, want ErrLoad", err)
	}
}

func TestDlopen_MissingPreload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libbogus.so")
	if err := os.WriteFile(path, []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(filepath.Join(t.TempDir(), "libphp-missing.so")).Describe(path)
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("Describe() error = %v, want ErrLoad", err)
	}
}

func TestGoString(t *testing.T) {
	buf := []byte("hello\x00world")
	if got := goString(&buf[0]); got != "hello" {
		t.Errorf("goString() = %q, want hello", got)
	}
	if got := goString(nil); got != "" {
		t.Errorf("goString(nil) = %q, want empty", got)
	}
}
