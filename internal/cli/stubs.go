package cli

import (
	"fmt"
	"os"

	"github.com/phpx-labs/cargo-php/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	stubsExt      string
	stubsOut      string
	stubsStdout   bool
	stubsManifest string
)

var stubsCmd = &cobra.Command{
	Use:   "stubs [extension]",
	Short: "Generate PHP stub files for the extension",
	Long: `Load the extension, read the description it exports and write a PHP stub
file that IDEs use for completion and type hints. Without an extension path
the current project is built in debug mode first.

The stubs are written to <module>.stubs.php in the current directory unless
--out or --stdout is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStubs,
}

func init() {
	stubsCmd.Flags().StringVar(&stubsExt, "ext", "", "Path to a built extension to generate stubs for")
	stubsCmd.Flags().StringVarP(&stubsOut, "out", "o", "", "Path of the stub file to write")
	stubsCmd.Flags().BoolVar(&stubsStdout, "stdout", false, "Print the stubs instead of writing a file")
	stubsCmd.Flags().StringVar(&stubsManifest, "manifest", "", "Path to the Cargo.toml of the extension")
	stubsCmd.MarkFlagsMutuallyExclusive("out", "stdout")
	stubsCmd.MarkFlagsMutuallyExclusive("ext", "manifest")
	rootCmd.AddCommand(stubsCmd)
}

func runStubs(cmd *cobra.Command, args []string) error {
	extPath := stubsExt
	if len(args) == 1 {
		if cmd.Flags().Changed("ext") || cmd.Flags().Changed("manifest") {
			return fmt.Errorf("an extension path cannot be combined with --ext or --manifest")
		}
		extPath = args[0]
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	opts := workflow.StubsOptions{
		Extension: extPath,
		Manifest:  stubsManifest,
		Out:       stubsOut,
		Dir:       cwd,
	}
	if stubsStdout {
		opts.Stdout = cmd.OutOrStdout()
	}

	runner := newRunner(cmd, stubsManifest, false)
	res, err := runner.Stubs(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if res.Path != "" {
		printSuccess(cmd.OutOrStdout(), "Wrote stubs for %s to %s", res.Module, res.Path)
	}
	return nil
}
