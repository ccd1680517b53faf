package project

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// SelectPrompt is shown when a project has more than one library target.
const SelectPrompt = "There were multiple library targets detected in the project. Which would you like to use?"

// Resolve returns the single library target of the project described by
// manifest. With several candidates, sel chooses one; with exactly one, sel
// is never consulted.
func Resolve(ctx context.Context, src MetadataSource, manifest string, sel Selector) (*Target, error) {
	targets, err := src.Targets(ctx, manifest)
	if err != nil {
		return nil, fmt.Errorf("retrieving project metadata: %w", err)
	}

	var libs []Target
	for _, t := range targets {
		if t.IsLibrary() {
			libs = append(libs, t)
		}
	}
	log.Debug().Int("targets", len(targets)).Int("libraries", len(libs)).Msg("enumerated project targets")

	switch len(libs) {
	case 0:
		return nil, ErrNoLibraryTarget
	case 1:
		return &libs[0], nil
	}

	names := make([]string, len(libs))
	for i, t := range libs {
		names[i] = t.Name
	}
	idx, err := sel.Select(SelectPrompt, names)
	if err != nil {
		return nil, fmt.Errorf("selecting library target: %w", err)
	}
	return &libs[idx], nil
}
