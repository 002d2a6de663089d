package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/initvue/init-vue/internal/branding"
	"github.com/initvue/init-vue/internal/config"
	"github.com/initvue/init-vue/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [project-name]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a Vue project with create-vue, sets the dev server port
in vite.config.js, installs dependencies, and strips the generated demo
components and assets so you start from an empty App.vue.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: runCreate,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
	addCreateFlags(cmd)
	return cmd
}

// newLogger returns the console logger for cmd's stderr.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(cmd.ErrOrStderr(), verbose)
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels any running child process.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
