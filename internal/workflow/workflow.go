package workflow

import (
	"context"
	"errors"

	"github.com/phpx-labs/cargo-php/internal/ext"
	"github.com/phpx-labs/cargo-php/internal/project"
)

// ErrCancelled is returned when the user declines the confirmation.
var ErrCancelled = errors.New("operation cancelled")

// Builder compiles a target and returns the path of its shared library.
type Builder interface {
	Build(ctx context.Context, target project.Target, release bool) (string, error)
}

// Describer loads an extension and returns its description.
type Describer interface {
	Describe(path string) (*ext.Descriptor, error)
}

// PHP locates the directories of the PHP installation.
type PHP interface {
	ExtensionDir(ctx context.Context) (string, error)
	INIPath(ctx context.Context) (string, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Runner holds the collaborators shared by every operation.
type Runner struct {
	Source    project.MetadataSource
	Selector  project.Selector
	Builder   Builder
	Describer Describer
	PHP       PHP
	Confirmer Confirmer
}

// Locations overrides where an extension is installed.
type Locations struct {
	// InstallDir replaces the PHP extension directory. php.ini is not
	// touched unless INIPath is also set.
	InstallDir string
	// INIPath replaces the php.ini reported by PHP.
	INIPath string
}

func (r *Runner) resolve(ctx context.Context, manifest string) (*project.Target, error) {
	return project.Resolve(ctx, r.Source, manifest, r.Selector)
}

// locate returns the extension directory and php.ini to use. The returned
// ini path is empty when no php.ini should be edited.
func (r *Runner) locate(ctx context.Context, loc Locations) (string, string, error) {
	extDir, iniPath := loc.InstallDir, ""
	if extDir == "" {
		var err error
		if extDir, err = r.PHP.ExtensionDir(ctx); err != nil {
			return "", "", err
		}
		if iniPath, err = r.PHP.INIPath(ctx); err != nil {
			return "", "", err
		}
	}
	if loc.INIPath != "" {
		iniPath = loc.INIPath
	}
	return extDir, iniPath, nil
}

func (r *Runner) confirm(question string) error {
	ok, err := r.Confirmer.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
