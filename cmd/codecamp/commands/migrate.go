package commands

import (
	"codecamp/config"
	"codecamp/internal/repository/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate {up|down|status|version}",
	Short: "Manage the database schema",
	Long: `Manage the database schema with the embedded migrations.

  up       apply all pending migrations
  down     roll back the most recent migration
  status   print the state of every migration
  version  print the current schema version`,
	ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus, postgres.MigrateVersion},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg)

	db, err := postgres.Open(cmd.Context(), cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	return postgres.Migrate(cmd.Context(), db, logger, args[0])
}
