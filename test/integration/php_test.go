//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
)

// fakePHP stands in for php-config, answering with the test's directories
// and creating php.ini the way php-config based lookup does.
type fakePHP struct{ env *testEnv }

func (f fakePHP) ExtensionDir(context.Context) (string, error) { return f.env.ExtDir, nil }

func (f fakePHP) INIPath(context.Context) (string, error) {
	path := filepath.Join(f.env.INIDir, "php.ini")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return "", err
		}
	}
	return path, nil
}
