package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/phpx-labs/cargo-php/internal/branding"
	"github.com/phpx-labs/cargo-php/internal/config"
	"github.com/phpx-labs/cargo-php/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` builds PHP extensions written with ext-php-rs, installs them into
the local PHP installation, and generates stub files for IDE completion.

It is usually run through cargo as ` + "`cargo php <command>`" + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logging.Init(branding.CLIName(), cmd.ErrOrStderr(), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each step to stderr")
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the running cargo or php-config process.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
