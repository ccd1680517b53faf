package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/phpx-labs/cargo-php/internal/project"
	"github.com/rs/zerolog/log"
)

// ErrSpawn is returned when cargo could not be started.
var ErrSpawn = errors.New("failed to spawn `cargo build`")

// Driver runs `cargo build` for a project.
type Driver struct {
	// Cargo is the cargo executable. Defaults to "cargo".
	Cargo string
	// Dir is the working directory of the build. Empty means the current one.
	Dir string
	// Manifest is passed as --manifest-path when set.
	Manifest string
	// Stderr receives cargo's rendered diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

// Args returns the cargo arguments for a build.
func (d *Driver) Args(release bool) []string {
	args := []string{"build", "--message-format=json-render-diagnostics"}
	if release {
		args = append(args, "--release")
	}
	if d.Manifest != "" {
		args = append(args, "--manifest-path", d.Manifest)
	}
	return args
}

// Build compiles the project and returns the path of the shared library built
// for target. It blocks until cargo exits.
func (d *Driver) Build(ctx context.Context, target project.Target, release bool) (string, error) {
	cargo := d.Cargo
	if cargo == "" {
		cargo = "cargo"
	}
	stderr := d.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	args := d.Args(release)
	cmd := exec.CommandContext(ctx, cargo, args...)
	cmd.Dir = d.Dir
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	log.Debug().Str("cargo", cargo).Str("args", strings.Join(args, " ")).Msg("starting build")
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	artifact, findErr := FindArtifact(Events(stdout), target)

	// Drain whatever cargo still writes so Wait cannot block on a full pipe.
	_, _ = io.Copy(io.Discard, stdout)
	waitErr := cmd.Wait()

	if findErr != nil {
		// Cargo that dies before reporting build-finished (bad manifest,
		// missing toolchain) is a failed compilation, not a missing artifact.
		if errors.Is(findErr, ErrArtifactNotProduced) && waitErr != nil {
			return "", fmt.Errorf("%w: %w", ErrCompilationFailed, waitErr)
		}
		return "", findErr
	}
	if waitErr != nil {
		return "", fmt.Errorf("%w: %w", ErrCompilationFailed, waitErr)
	}

	path, err := LibraryPath(artifact)
	if err != nil {
		return "", err
	}
	log.Debug().Str("path", path).Msg("build finished")
	return path, nil
}
