package cli

import (
	"github.com/phpx-labs/cargo-php/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	removeManifest  string
	removeDir       string
	removeINIPath   string
	removeAssumeYes bool
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"uninstall"},
	Short:   "Remove the extension from the local PHP installation",
	Long: `Delete the extension built by the current project from PHP's extension
directory and drop every php.ini line that references it. The project is not
rebuilt.`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeManifest, "manifest", "", "Path to the Cargo.toml of the extension")
	removeCmd.Flags().StringVar(&removeDir, "install-dir", "", "Remove from this directory instead of PHP's extension directory")
	removeCmd.Flags().StringVar(&removeINIPath, "ini-path", "", "Update this php.ini instead of the one reported by php-config")
	removeCmd.Flags().BoolVarP(&removeAssumeYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	runner := newRunner(cmd, removeManifest, removeAssumeYes)

	res, err := runner.Remove(cmd.Context(), workflow.RemoveOptions{
		Locations: locations(removeDir, removeINIPath),
		Manifest:  removeManifest,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Removed %s", res.Removed)
	if res.INIPath != "" {
		printDetail(out, "updated %s", res.INIPath)
	}
	return nil
}
