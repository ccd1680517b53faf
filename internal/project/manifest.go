package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestFile reads targets straight from Cargo.toml, without invoking cargo.
// Only targets declared in the manifest are reported; implicit binaries and
// tests are not synthesized.
type ManifestFile struct {
	// Dir locates Cargo.toml when no manifest path is given.
	Dir string
}

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Lib     *manifestTarget  `toml:"lib"`
	Example []manifestTarget `toml:"example"`
}

type manifestTarget struct {
	Name      string   `toml:"name"`
	Path      string   `toml:"path"`
	CrateType []string `toml:"crate-type"`
}

// Targets decodes the manifest and returns its library and example targets.
func (m *ManifestFile) Targets(_ context.Context, manifest string) ([]Target, error) {
	if manifest == "" {
		manifest = filepath.Join(m.Dir, "Cargo.toml")
	}
	manifest, err := filepath.Abs(manifest)
	if err != nil {
		return nil, fmt.Errorf("resolving manifest path: %w", err)
	}

	var cm cargoManifest
	if _, err := toml.DecodeFile(manifest, &cm); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", manifest, err)
	}
	if cm.Package.Name == "" {
		return nil, fmt.Errorf("parsing manifest %s: %w", manifest, ErrNoRootPackage)
	}

	root := filepath.Dir(manifest)
	var targets []Target

	lib := manifestTarget{}
	if cm.Lib != nil {
		lib = *cm.Lib
	}
	if lib.Name == "" {
		lib.Name = cm.Package.Name
	}
	lib.Name = strings.ReplaceAll(lib.Name, "-", "_")
	if lib.Path == "" {
		lib.Path = filepath.Join("src", "lib.rs")
	}
	if len(lib.CrateType) == 0 {
		lib.CrateType = []string{"lib"}
	}
	targets = append(targets, lib.target(root))

	for _, ex := range cm.Example {
		if ex.Path == "" {
			ex.Path = filepath.Join("examples", ex.Name+".rs")
		}
		if len(ex.CrateType) == 0 {
			ex.CrateType = []string{"bin"}
		}
		t := ex.target(root)
		t.Kind = []string{"example"}
		targets = append(targets, t)
	}

	return targets, nil
}

func (mt manifestTarget) target(root string) Target {
	return Target{
		Name:       mt.Name,
		Kind:       append([]string(nil), mt.CrateType...),
		CrateTypes: append([]string(nil), mt.CrateType...),
		SrcPath:    filepath.Join(root, mt.Path),
	}
}
