// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	DescribeSymbol string `yaml:"describe_symbol"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "cargo-php",
			DisplayName:    "cargo-php",
			Description:    "Installs PHP extensions built with ext-php-rs and generates IDE stubs",
			HomeDir:        ".cargo-php",
			EnvPrefix:      "CARGO_PHP",
			GoModule:       "github.com/phpx-labs/cargo-php",
			DescribeSymbol: "ext_php_rs_describe_module",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "cargo-php").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".cargo-php").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CARGO_PHP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path reported by `version --json`.
func GoModule() string { load(); return defaults.GoModule }

// DescribeSymbol returns the name of the function every extension exports
// to describe its module.
func DescribeSymbol() string { load(); return defaults.DescribeSymbol }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("CARGO") → "CARGO_PHP_CARGO".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
