package project

import (
	"context"
	"errors"
	"slices"
)

// ErrNoLibraryTarget is returned when the project declares no target that
// compiles to a dynamically loadable library.
var ErrNoLibraryTarget = errors.New("no library targets were found")

// ErrNoRootPackage is returned when the metadata does not identify which
// package the manifest belongs to.
var ErrNoRootPackage = errors.New("could not determine the root package")

// Target is one compilable target of a Cargo package, as reported by
// `cargo metadata` and echoed in compiler artifact messages.
type Target struct {
	Name       string   `json:"name"`
	Kind       []string `json:"kind"`
	CrateTypes []string `json:"crate_types"`
	SrcPath    string   `json:"src_path"`
}

// IsLibrary reports whether the target produces a shared object that PHP can
// load.
func (t Target) IsLibrary() bool {
	for _, ty := range t.CrateTypes {
		if ty == "dylib" || ty == "cdylib" {
			return true
		}
	}
	return false
}

// Equal reports whether t and o identify the same target.
func (t Target) Equal(o Target) bool {
	return t.Name == o.Name &&
		t.SrcPath == o.SrcPath &&
		slices.Equal(t.Kind, o.Kind) &&
		slices.Equal(t.CrateTypes, o.CrateTypes)
}

// MetadataSource enumerates the targets of the root package described by
// manifest. An empty manifest means the project in the working directory.
type MetadataSource interface {
	Targets(ctx context.Context, manifest string) ([]Target, error)
}

// Selector picks one of several candidate targets. The returned index is
// trusted to be within range.
type Selector interface {
	Select(prompt string, items []string) (int, error)
}
