package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/phpx-labs/cargo-php/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPHPConfig      = "php_config"
	KeyCargo          = "cargo"
	KeyMetadataSource = "metadata_source"
	KeyInstallDir     = "install_dir"
	KeyINIPath        = "ini_path"
	KeyPreload        = "preload"
)

// Keys lists every key understood by `config get/set`.
var Keys = []string{KeyPHPConfig, KeyCargo, KeyMetadataSource, KeyInstallDir, KeyINIPath, KeyPreload}

// Dir returns the path to the config directory (~/.cargo-php/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cargo-php/config.yaml).
func FilePath() string {
	if v := os.Getenv(branding.EnvVar("config")); v != "" {
		return v
	}
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the directory holding the config file if it does not exist.
func EnsureDir() error {
	dir := filepath.Dir(FilePath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A .env file in the working directory is loaded first; it never overrides
// variables that are already set.
func Load() {
	_ = godotenv.Load()

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// The conventional variables win over the prefixed ones. Cargo exports
	// CARGO to its subcommands.
	_ = viper.BindEnv(KeyPHPConfig, "PHP_CONFIG", branding.EnvVar(KeyPHPConfig))
	_ = viper.BindEnv(KeyCargo, "CARGO", branding.EnvVar(KeyCargo))

	viper.SetDefault(KeyPHPConfig, "php-config")
	viper.SetDefault(KeyCargo, "cargo")
	viper.SetDefault(KeyMetadataSource, "cargo")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetList returns a whitespace separated config value as a list.
func GetList(key string) []string {
	return strings.Fields(viper.GetString(key))
}

// IsKnown reports whether key is one of Keys.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
