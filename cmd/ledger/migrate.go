package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/ledger/internal/adapters/repository/postgres"
)

var migrationsDir string

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir",
		filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations"),
		"directory holding the SQL migration files")
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [name]",
	Short: "Apply all up migrations, or the single named migration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireDurableStore(cfg, "migrate"); err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel)

		db, err := openSQL(cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		if len(args) == 1 {
			if err := postgres.ApplyMigration(ctx, db, migrationsDir, args[0]); err != nil {
				return err
			}
			logger.Info("migration file executed successfully", "name", args[0])
			return nil
		}

		if err := postgres.ApplyMigrations(ctx, db, migrationsDir); err != nil {
			return err
		}
		logger.Info("migrations applied", "dir", migrationsDir)
		return nil
	},
}
