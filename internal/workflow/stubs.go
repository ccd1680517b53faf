package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phpx-labs/cargo-php/internal/stubs"
	"github.com/rs/zerolog/log"
)

// StubsOptions configures Stubs.
type StubsOptions struct {
	// Extension is a built library to describe. Empty means build the
	// project first.
	Extension string
	// Manifest is the Cargo.toml of the project. Empty means the current one.
	Manifest string
	// Out is the stub file to write. Empty means <module>.stubs.php in Dir.
	Out string
	// Dir is where the default stub file is written. Empty means the
	// current directory.
	Dir string
	// Stdout receives the stubs instead of a file when set.
	Stdout io.Writer
}

// StubsResult reports what Stubs did.
type StubsResult struct {
	Module    string
	Extension string
	// Path is the written stub file, empty when printed.
	Path string
}

// Stubs writes PHP stubs for an extension. Without an explicit extension
// path the project is built in debug mode and its library is used.
func (r *Runner) Stubs(ctx context.Context, opts StubsOptions) (*StubsResult, error) {
	extPath := opts.Extension
	if extPath == "" {
		target, err := r.resolve(ctx, opts.Manifest)
		if err != nil {
			return nil, err
		}
		if extPath, err = r.Builder.Build(ctx, *target, false); err != nil {
			return nil, err
		}
	}

	desc, err := r.Describer.Describe(extPath)
	if err != nil {
		return nil, err
	}
	res := &StubsResult{Module: desc.Module.Name, Extension: extPath}

	if opts.Stdout != nil {
		return res, stubs.Render(opts.Stdout, desc.Module)
	}

	out := opts.Out
	if out == "" {
		out = filepath.Join(opts.Dir, desc.Module.Name+".stubs.php")
	}

	content, err := stubs.String(desc.Module)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(out, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing stubs to %s: %w", out, err)
	}
	log.Debug().Str("module", desc.Module.Name).Str("out", out).Msg("stubs written")

	res.Path = out
	return res, nil
}
