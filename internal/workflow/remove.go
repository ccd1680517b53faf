package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phpx-labs/cargo-php/internal/ini"
	"github.com/phpx-labs/cargo-php/internal/platform"
)

// RemoveOptions configures Remove.
type RemoveOptions struct {
	Locations
	// Manifest is the Cargo.toml of the project. Empty means the current one.
	Manifest string
}

// RemoveResult reports what Remove did.
type RemoveResult struct {
	Target  string
	Removed string
	INIPath string
}

// Remove deletes the project's installed extension and its php.ini
// directives. The project is not built.
func (r *Runner) Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	target, err := r.resolve(ctx, opts.Manifest)
	if err != nil {
		return nil, err
	}

	extDir, iniPath, err := r.locate(ctx, opts.Locations)
	if err != nil {
		return nil, err
	}

	fileName := platform.LibraryFileName(target.Name)
	libPath := filepath.Join(extDir, fileName)

	if info, err := os.Stat(libPath); err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ini.ErrNotInstalled, libPath)
	}

	if err := r.confirm(fmt.Sprintf("Are you sure you want to remove the extension `%s`?", target.Name)); err != nil {
		return nil, err
	}

	if err := ini.Uninstall(libPath, iniPath, fileName); err != nil {
		return nil, err
	}

	return &RemoveResult{Target: target.Name, Removed: libPath, INIPath: iniPath}, nil
}
