package cli

import (
	"github.com/phpx-labs/cargo-php/internal/build"
	"github.com/phpx-labs/cargo-php/internal/config"
	"github.com/phpx-labs/cargo-php/internal/ext"
	"github.com/phpx-labs/cargo-php/internal/phpconfig"
	"github.com/phpx-labs/cargo-php/internal/project"
	"github.com/phpx-labs/cargo-php/internal/prompt"
	"github.com/phpx-labs/cargo-php/internal/workflow"
	"github.com/spf13/cobra"
)

// newRunner wires the workflow collaborators from configuration.
func newRunner(cmd *cobra.Command, manifest string, assumeYes bool) *workflow.Runner {
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	p.AssumeYes = assumeYes

	cargo := config.Get(config.KeyCargo)
	return &workflow.Runner{
		Source:   metadataSource(cargo),
		Selector: p,
		Builder: &build.Driver{
			Cargo:    cargo,
			Manifest: manifest,
			Stderr:   cmd.ErrOrStderr(),
		},
		Describer: ext.NewLoader(config.GetList(config.KeyPreload)...),
		PHP:       phpconfig.New(config.Get(config.KeyPHPConfig)),
		Confirmer: p,
	}
}

// metadataSource picks how project targets are enumerated. "manifest" reads
// Cargo.toml directly; anything else asks cargo.
func metadataSource(cargo string) project.MetadataSource {
	if config.Get(config.KeyMetadataSource) == "manifest" {
		return &project.ManifestFile{}
	}
	return &project.CargoMetadata{Cargo: cargo}
}

// locations fills unset flags from configuration.
func locations(installDir, iniPath string) workflow.Locations {
	if installDir == "" {
		installDir = config.Get(config.KeyInstallDir)
	}
	if iniPath == "" {
		iniPath = config.Get(config.KeyINIPath)
	}
	return workflow.Locations{InstallDir: installDir, INIPath: iniPath}
}
