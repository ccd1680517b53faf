//go:build integration

package integration_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phpx-labs/cargo-php/internal/ext"
	"github.com/phpx-labs/cargo-php/internal/ini"
	"github.com/phpx-labs/cargo-php/internal/platform"
	"github.com/phpx-labs/cargo-php/internal/workflow"
)

// TestFullFlowInstallStubsRemove builds the fixture crate with cargo, installs
// it, generates stubs from the loaded library and removes it again.
func TestFullFlowInstallStubsRemove(t *testing.T) {
	env := setupTestEnv(t, ext.ContractVersion)
	runner := newRunner(t, env)
	ctx := context.Background()
	fileName := platform.LibraryFileName("fixture-ext")

	// Step 1: Install.
	res, err := runner.Install(ctx, workflow.InstallOptions{})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if res.Target != "fixture_ext" {
		t.Errorf("target = %q, want fixture_ext", res.Target)
	}
	installed := filepath.Join(env.ExtDir, fileName)
	assertFileExists(t, installed)
	assertFileContains(t, env.INIPath(), "extension="+fileName)

	// Step 2: Stubs from the installed copy.
	stubsDir := t.TempDir()
	stubs, err := runner.Stubs(ctx, workflow.StubsOptions{Extension: installed, Dir: stubsDir})
	if err != nil {
		t.Fatalf("Stubs: %v", err)
	}
	if stubs.Module != "fixture" {
		t.Errorf("module = %q, want fixture", stubs.Module)
	}
	assertFileContains(t, filepath.Join(stubsDir, "fixture.stubs.php"), "function fixture_hello(string $name): string {}")
	assertFileContains(t, filepath.Join(stubsDir, "fixture.stubs.php"), "namespace Fixture {")

	// Step 3: Disable, then enable again.
	if _, err := runner.Install(ctx, workflow.InstallOptions{Disable: true}); err != nil {
		t.Fatalf("Install --disable: %v", err)
	}
	assertFileContains(t, env.INIPath(), ";extension="+fileName)
	if _, err := runner.Install(ctx, workflow.InstallOptions{}); err != nil {
		t.Fatalf("Install: %v", err)
	}
	assertFileContains(t, env.INIPath(), "extension="+fileName)

	// Step 4: Remove twice.
	if _, err := runner.Remove(ctx, workflow.RemoveOptions{}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	assertFileNotExists(t, installed)
	if _, err := runner.Remove(ctx, workflow.RemoveOptions{}); !errors.Is(err, ini.ErrNotInstalled) {
		t.Errorf("second Remove error = %v, want ErrNotInstalled", err)
	}
}

// TestStubs_IncompatibleContract checks that a library declaring a newer
// contract is rejected after loading.
func TestStubs_IncompatibleContract(t *testing.T) {
	env := setupTestEnv(t, "99.0.0")
	runner := newRunner(t, env)

	_, err := runner.Stubs(context.Background(), workflow.StubsOptions{Dir: t.TempDir()})
	var incompatible *ext.IncompatibleError
	if !errors.As(err, &incompatible) {
		t.Fatalf("Stubs error = %v, want IncompatibleError", err)
	}
	if incompatible.Declared != "99.0.0" {
		t.Errorf("declared = %q", incompatible.Declared)
	}
	if !strings.Contains(err.Error(), "99.0.0") {
		t.Errorf("error does not name the declared version: %v", err)
	}
}
