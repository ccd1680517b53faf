package phpconfig

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBinary is used when no php-config path is configured.
const DefaultBinary = "php-config"

// INIFileName is the configuration file looked up in the --ini-path directory.
const INIFileName = "php.ini"

// Helper runs a php-config executable.
type Helper struct {
	// Binary is the php-config executable. Empty means DefaultBinary.
	Binary string
}

// New returns a Helper for binary, falling back to DefaultBinary.
func New(binary string) *Helper {
	return &Helper{Binary: binary}
}

func (h *Helper) binary() string {
	if h.Binary == "" {
		return DefaultBinary
	}
	return h.Binary
}

// Query runs php-config with a single flag and returns its trimmed output.
func (h *Helper) Query(ctx context.Context, flag string) (string, error) {
	cmd := exec.CommandContext(ctx, h.binary(), flag)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("running %s %s: %w: %s", h.binary(), flag, err, msg)
		}
		return "", fmt.Errorf("running %s %s: %w", h.binary(), flag, err)
	}

	value := strings.TrimSpace(string(out))
	log.Debug().Str("php_config", h.binary()).Str("flag", flag).Str("value", value).Msg("queried php-config")
	return value, nil
}

// ExtensionDir returns the directory PHP loads extensions from.
func (h *Helper) ExtensionDir(ctx context.Context) (string, error) {
	dir, err := h.Query(ctx, "--extension-dir")
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", fmt.Errorf("%s --extension-dir returned an empty path", h.binary())
	}
	return dir, nil
}

// INIPath returns the path of php.ini, creating an empty file when PHP has
// none yet.
func (h *Helper) INIPath(ctx context.Context) (string, error) {
	dir, err := h.Query(ctx, "--ini-path")
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", fmt.Errorf("%s --ini-path returned an empty path", h.binary())
	}

	path := filepath.Join(dir, INIFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", path, err)
		}
		f.Close()
		log.Debug().Str("ini", path).Msg("created empty php.ini")
	}
	return path, nil
}
