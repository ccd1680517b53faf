package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
)

// CargoMetadata reads targets by running `cargo metadata`.
type CargoMetadata struct {
	// Cargo is the cargo executable. Defaults to "cargo".
	Cargo string
	// Dir is the working directory for the command. Empty means the current one.
	Dir string
}

type metadata struct {
	Packages      []metadataPackage `json:"packages"`
	WorkspaceRoot string            `json:"workspace_root"`
}

type metadataPackage struct {
	Name         string   `json:"name"`
	ID           string   `json:"id"`
	ManifestPath string   `json:"manifest_path"`
	Targets      []Target `json:"targets"`
}

// Targets runs `cargo metadata` and returns the targets of the root package.
func (c *CargoMetadata) Targets(ctx context.Context, manifest string) ([]Target, error) {
	cargo := c.Cargo
	if cargo == "" {
		cargo = "cargo"
	}

	args := []string{"metadata", "--format-version", "1", "--no-deps", "--all-features"}
	if manifest != "" {
		args = append(args, "--manifest-path", manifest)
	}

	cmd := exec.CommandContext(ctx, cargo, args...)
	cmd.Dir = c.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("calling `cargo metadata`: %w\n%s", err, stderr.String())
	}

	var meta metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, fmt.Errorf("parsing `cargo metadata` output: %w", err)
	}

	manifestAbs := ""
	switch {
	case manifest == "":
	case c.Dir != "" && !filepath.IsAbs(manifest):
		manifestAbs = filepath.Join(c.Dir, manifest)
	default:
		if manifestAbs, err = filepath.Abs(manifest); err != nil {
			return nil, fmt.Errorf("resolving manifest path %s: %w", manifest, err)
		}
	}

	pkg, err := rootPackage(&meta, manifestAbs)
	if err != nil {
		return nil, err
	}
	return pkg.Targets, nil
}

// rootPackage picks the package owning manifestPath, or the package at the
// workspace root when no manifest was given.
func rootPackage(meta *metadata, manifestPath string) (*metadataPackage, error) {
	want := manifestPath
	if want == "" && meta.WorkspaceRoot != "" {
		want = filepath.Join(meta.WorkspaceRoot, "Cargo.toml")
	}

	for i := range meta.Packages {
		if filepath.Clean(meta.Packages[i].ManifestPath) == filepath.Clean(want) {
			return &meta.Packages[i], nil
		}
	}

	// A virtual workspace with a single member still has an unambiguous root.
	if len(meta.Packages) == 1 {
		return &meta.Packages[0], nil
	}
	return nil, ErrNoRootPackage
}
