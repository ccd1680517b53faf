package build

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/phpx-labs/cargo-php/internal/platform"
	"github.com/phpx-labs/cargo-php/internal/project"
	"github.com/rs/zerolog/log"
)

var (
	// ErrCompilationFailed is returned when cargo reports an unsuccessful build.
	ErrCompilationFailed = errors.New("compilation failed")
	// ErrArtifactNotProduced is returned when the build finished without an
	// artifact for the requested target.
	ErrArtifactNotProduced = errors.New("extension artifact was not compiled")
	// ErrLibraryPathNotFound is returned when none of an artifact's files is a
	// shared library for this platform.
	ErrLibraryPathNotFound = errors.New("failed to retrieve extension path from artifact")
)

// FindArtifact consumes events until the build finishes and returns the last
// artifact produced for target. A failed build always yields
// ErrCompilationFailed, even when an artifact was seen before it.
func FindArtifact(events iter.Seq2[Event, error], target project.Target) (*Artifact, error) {
	var found *Artifact
	for ev, err := range events {
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case KindArtifact:
			if ev.Artifact.Target.Equal(target) {
				log.Debug().Str("target", target.Name).Strs("files", ev.Artifact.Filenames).Msg("artifact produced")
				found = ev.Artifact
			}
		case KindFinished:
			if !ev.Success {
				return nil, ErrCompilationFailed
			}
			return requireArtifact(found, target)
		}
	}
	return requireArtifact(found, target)
}

func requireArtifact(a *Artifact, target project.Target) (*Artifact, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: target %q", ErrArtifactNotProduced, target.Name)
	}
	return a, nil
}

// LibraryPath returns the first file of a whose extension is the platform's
// shared library extension.
func LibraryPath(a *Artifact) (string, error) {
	return libraryPath(a, "."+platform.DLLExtension())
}

func libraryPath(a *Artifact, ext string) (string, error) {
	for _, file := range a.Filenames {
		if filepath.Ext(file) == ext {
			return file, nil
		}
	}
	return "", fmt.Errorf("%w: target %q", ErrLibraryPathNotFound, a.Target.Name)
}
