//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/phpx-labs/cargo-php/internal/build"
	"github.com/phpx-labs/cargo-php/internal/ext"
	"github.com/phpx-labs/cargo-php/internal/project"
	"github.com/phpx-labs/cargo-php/internal/workflow"
)

// testEnv holds paths to an isolated crate and PHP installation.
type testEnv struct {
	CrateDir string // Rust crate exporting the describe symbol
	Manifest string // CrateDir/Cargo.toml
	ExtDir   string // what the fake php-config reports for --extension-dir
	INIDir   string // what the fake php-config reports for --ini-path
}

// INIPath is the php.ini the tool manages.
func (e *testEnv) INIPath() string { return filepath.Join(e.INIDir, "php.ini") }

// setupTestEnv writes a fixture crate declaring contractVersion and a fake
// php-config. Tests are skipped when cargo is not installed.
func setupTestEnv(t *testing.T, contractVersion string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake php-config requires a POSIX shell")
	}
	if _, err := exec.LookPath("cargo"); err != nil {
		t.Skip("cargo not found in PATH")
	}

	root := t.TempDir()
	env := &testEnv{
		CrateDir: filepath.Join(root, "fixture-ext"),
		ExtDir:   filepath.Join(root, "php", "extensions"),
		INIDir:   filepath.Join(root, "php", "etc"),
	}
	env.Manifest = filepath.Join(env.CrateDir, "Cargo.toml")

	for _, dir := range []string{env.ExtDir, env.INIDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}

	writeFile(t, env.Manifest, fixtureManifest)
	writeFile(t, filepath.Join(env.CrateDir, "src", "lib.rs"), strings.ReplaceAll(fixtureLib, "CONTRACT", contractVersion))

	return env
}

const fixtureManifest = `[package]
name = "fixture-ext"
version = "0.1.0"
edition = "2021"

[lib]
crate-type = ["cdylib"]
`

// fixtureLib exports the describe function without depending on PHP.
const fixtureLib = `use std::os::raw::c_char;

#[repr(C)]
pub struct Description {
    version: *const c_char,
    name: *const c_char,
    module: *const c_char,
}

#[no_mangle]
pub extern "C" fn ext_php_rs_describe_module() -> *const Description {
    Box::into_raw(Box::new(Description {
        version: b"CONTRACT\0".as_ptr() as *const c_char,
        name: b"fixture\0".as_ptr() as *const c_char,
        module: concat!(
            r#"{"name":"fixture","functions":[{"name":"fixture_hello","params":[{"name":"name","ty":"string"}],"ret":{"ty":"string"}}],"#,
            r#""classes":[{"name":"Fixture\\Greeter","methods":[{"name":"greet","kind":"static","ret":{"ty":"string"}}]}]}"#,
            "\0"
        )
        .as_ptr() as *const c_char,
    }))
}
`

// newRunner wires the real cargo and loader with a fake php-config and
// auto-confirming prompts.
func newRunner(t *testing.T, env *testEnv) *workflow.Runner {
	t.Helper()
	return &workflow.Runner{
		Source:    &project.CargoMetadata{Dir: env.CrateDir},
		Selector:  firstChoice{},
		Builder:   &build.Driver{Dir: env.CrateDir, Manifest: env.Manifest},
		Describer: ext.NewLoader(),
		PHP:       fakePHP{env: env},
		Confirmer: yes{},
	}
}

type firstChoice struct{}

func (firstChoice) Select(string, []string) (int, error) { return 0, nil }

type yes struct{}

func (yes) Confirm(string) (bool, error) { return true, nil }

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
