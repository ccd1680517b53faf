package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phpx-labs/cargo-php/internal/ini"
	"github.com/phpx-labs/cargo-php/internal/platform"
	"github.com/rs/zerolog/log"
)

// InstallOptions configures Install.
type InstallOptions struct {
	Locations
	// Manifest is the Cargo.toml of the project. Empty means the current one.
	Manifest string
	// Release builds with optimizations.
	Release bool
	// Disable adds the php.ini directive commented out.
	Disable bool
	// Link symlinks the build output instead of copying it.
	Link bool
}

// InstallResult reports what Install did.
type InstallResult struct {
	Target    string
	Artifact  string
	Installed string
	// INIPath is the php.ini that was updated, empty when none was.
	INIPath string
}

// Install builds the project's extension, places it in the PHP extension
// directory and registers it in php.ini.
func (r *Runner) Install(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	target, err := r.resolve(ctx, opts.Manifest)
	if err != nil {
		return nil, err
	}

	artifact, err := r.Builder.Build(ctx, *target, opts.Release)
	if err != nil {
		return nil, err
	}

	extDir, iniPath, err := r.locate(ctx, opts.Locations)
	if err != nil {
		return nil, err
	}

	if err := r.confirm(fmt.Sprintf("Are you sure you want to install the extension `%s`?", target.Name)); err != nil {
		return nil, err
	}

	fileName := filepath.Base(artifact)
	dest := extDir
	if info, err := os.Stat(extDir); err == nil && info.IsDir() {
		dest = filepath.Join(extDir, fileName)
	}

	if opts.Link {
		err = linkFile(artifact, dest)
	} else {
		err = copyFile(artifact, dest)
	}
	if err != nil {
		return nil, fmt.Errorf("installing extension to %s: %w", dest, err)
	}
	log.Debug().Str("artifact", artifact).Str("dest", dest).Bool("link", opts.Link).Msg("extension placed")

	if iniPath != "" {
		action := ini.Enable
		if opts.Disable {
			action = ini.Disable
		}
		if err := ini.Reconcile(iniPath, fileName, action); err != nil {
			return nil, err
		}
	}

	return &InstallResult{
		Target:    target.Name,
		Artifact:  artifact,
		Installed: dest,
		INIPath:   iniPath,
	}, nil
}

// copyFile copies src to dst, replacing dst. An existing dst is removed
// first so a previous symlink is replaced rather than written through.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return platform.Chmod(dst, 0755)
}

func linkFile(src, dst string) error {
	abs, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}
	return platform.CreateSymlink(abs, dst)
}
