package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sm8ta/motodash/internal/adapter/sqlite"
	"github.com/sm8ta/motodash/internal/config"
)

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|status]",
		Short:     "Apply or inspect database migrations",
		Long: `Apply pending migrations (up, the default) or print their status.

The database file is DATABASE_PATH. Migrations are read from MIGRATIONS_DIR,
which defaults to ./internal/adapter/sqlite/migrations relative to the
working directory.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			db, err := sqlite.Open(cfg.DB.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			switch action {
			case "status":
				return sqlite.Status(db, cfg.DB.MigrationsDir)
			default:
				if err := sqlite.Migrate(db, cfg.DB.MigrationsDir); err != nil {
					return err
				}
				version, err := sqlite.Version(db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "database %s at version %d\n", cfg.DB.Path, version)
				return nil
			}
		},
	}
	return cmd
}
