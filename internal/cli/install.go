package cli

import (
	"github.com/phpx-labs/cargo-php/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	installManifest  string
	installRelease   bool
	installDir       string
	installINIPath   string
	installDisable   bool
	installLink      bool
	installAssumeYes bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the extension into the local PHP installation",
	Long: `Build the extension in the current project and copy it into PHP's extension
directory, then add an extension= line to php.ini. Both locations come from
php-config unless --install-dir or --ini-path is given. With --install-dir
alone, php.ini is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installManifest, "manifest", "", "Path to the Cargo.toml of the extension")
	installCmd.Flags().BoolVar(&installRelease, "release", false, "Build the extension in release mode")
	installCmd.Flags().StringVar(&installDir, "install-dir", "", "Install into this directory instead of PHP's extension directory")
	installCmd.Flags().StringVar(&installINIPath, "ini-path", "", "Update this php.ini instead of the one reported by php-config")
	installCmd.Flags().BoolVar(&installDisable, "disable", false, "Add the extension to php.ini commented out")
	installCmd.Flags().BoolVar(&installLink, "link", false, "Symlink the build output instead of copying it")
	installCmd.Flags().BoolVarP(&installAssumeYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	runner := newRunner(cmd, installManifest, installAssumeYes)

	res, err := runner.Install(cmd.Context(), workflow.InstallOptions{
		Locations: locations(installDir, installINIPath),
		Manifest:  installManifest,
		Release:   installRelease,
		Disable:   installDisable,
		Link:      installLink,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Installed %s to %s", res.Target, res.Installed)
	if res.INIPath != "" {
		state := "enabled"
		if installDisable {
			state = "disabled"
		}
		printDetail(out, "%s in %s", state, res.INIPath)
	}
	return nil
}
