package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codecamp",
	Short: "Code Camp API server",
	Long: `codecamp serves a REST API for code camps, the talks given at them
and the speakers presenting those talks, backed by PostgreSQL.

Configuration is read from the environment (and a .env file outside
production): GO_ENV, PORT, DATABASE_URL, LOG_LEVEL, CONTEXT_TIMEOUT,
SHUTDOWN_TIMEOUT, CORS_ALLOWED_ORIGINS and AUTO_MIGRATE.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it with ctx.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
