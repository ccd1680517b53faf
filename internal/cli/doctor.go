package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/phpx-labs/cargo-php/internal/config"
	"github.com/phpx-labs/cargo-php/internal/ext"
	"github.com/phpx-labs/cargo-php/internal/phpconfig"
	"github.com/phpx-labs/cargo-php/internal/project"
	"github.com/spf13/cobra"
)

var (
	checkToolchain bool
	checkPHP       bool
	checkProject   bool
	checkModule    string
	doctorManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkToolchain, "check-toolchain", false, "Verify cargo and php-config are available")
	doctorCmd.Flags().BoolVar(&checkPHP, "check-php", false, "Verify the extension directory and php.ini")
	doctorCmd.Flags().BoolVar(&checkProject, "check-project", false, "List the library targets of the current project")
	doctorCmd.Flags().StringVar(&checkModule, "check-module", "", "Validate a module description JSON file at the given path")
	doctorCmd.Flags().StringVar(&doctorManifest, "manifest", "", "Path to the Cargo.toml used by --check-project")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the build and PHP environment",
	Long:  `Run diagnostic checks on the Rust toolchain, the PHP installation and the current project.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctx := cmd.Context()

		anyFlag := checkToolchain || checkPHP || checkProject || checkModule != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			runToolchainCheck(out)
			runPHPCheck(ctx, out)
			runProjectCheck(ctx, out, doctorManifest)
			return nil
		}

		if checkToolchain {
			runToolchainCheck(out)
		}
		if checkPHP {
			runPHPCheck(ctx, out)
		}
		if checkProject {
			runProjectCheck(ctx, out, doctorManifest)
		}
		if checkModule != "" {
			if err := runModuleCheck(out, checkModule); err != nil {
				return err
			}
		}
		return nil
	},
}

func runToolchainCheck(w io.Writer) {
	fmt.Fprintln(w, "Toolchain check:")
	checkBinary(w, config.Get(config.KeyCargo))
	checkBinary(w, config.Get(config.KeyPHPConfig))
	fmt.Fprintf(w, "  [INFO] reads extensions built with ext-php-rs ^%s\n", ext.ContractVersion)
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

// runPHPCheck inspects the PHP installation without creating anything.
func runPHPCheck(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "PHP check:")
	php := phpconfig.New(config.Get(config.KeyPHPConfig))

	if dir := config.Get(config.KeyInstallDir); dir != "" {
		fmt.Fprintf(w, "  [INFO] install_dir overrides the extension directory: %s\n", dir)
	}
	extDir, err := php.ExtensionDir(ctx)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] extension directory: %v\n", err)
	case !isDir(extDir):
		fmt.Fprintf(w, "  [WARN] extension directory %s does not exist\n", extDir)
	default:
		fmt.Fprintf(w, "  [ OK ] extension directory %s\n", extDir)
	}

	iniPath := config.Get(config.KeyINIPath)
	if iniPath == "" {
		iniDir, err := php.Query(ctx, "--ini-path")
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] php.ini location: %v\n", err)
			return
		}
		iniPath = filepath.Join(iniDir, phpconfig.INIFileName)
	}
	if _, err := os.Stat(iniPath); err != nil {
		fmt.Fprintf(w, "  [WARN] %s does not exist yet; install creates it\n", iniPath)
		return
	}
	fmt.Fprintf(w, "  [ OK ] php.ini at %s\n", iniPath)
}

func runProjectCheck(ctx context.Context, w io.Writer, manifest string) {
	fmt.Fprintln(w, "Project check:")

	targets, err := metadataSource(config.Get(config.KeyCargo)).Targets(ctx, manifest)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] reading project metadata: %v\n", err)
		return
	}

	found := 0
	for _, t := range targets {
		if !t.IsLibrary() {
			continue
		}
		found++
		fmt.Fprintf(w, "  [ OK ] library target %s (%s)\n", t.Name, t.SrcPath)
	}
	switch {
	case found == 0:
		fmt.Fprintf(w, "  [FAIL] %v; set crate-type = [\"cdylib\"] under [lib]\n", project.ErrNoLibraryTarget)
	case found > 1:
		fmt.Fprintf(w, "  [INFO] %d library targets; install will ask which one to use\n", found)
	}
}

func runModuleCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Module description validation: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("reading module description: %w", err)
	}

	err = ext.ValidateModule(data)
	if err == nil {
		fmt.Fprintln(w, "  [ OK ] Valid module description")
		return nil
	}

	var modErr *ext.ModuleError
	if !errors.As(err, &modErr) {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(modErr.Issues))
	for _, issue := range modErr.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("module description %s has %d validation issue(s)", path, len(modErr.Issues))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
