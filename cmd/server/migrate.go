package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/rl1809/partstore/internal/adapter/storage"
	"github.com/rl1809/partstore/internal/config"
)

const migrateTimeout = 30 * time.Second

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the parts table in a SQL store",
		Long:  `Applies the embedded migrations to the store named by DATABASE_URI. Redis and memory stores need no schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			return migrate(ctx, cfg, cmd)
		},
	}
}

func migrate(ctx context.Context, cfg *config.Config, cmd *cobra.Command) error {
	repo, err := storage.Open(ctx, cfg.DatabaseURI)
	if err != nil {
		return err
	}
	defer repo.Close()

	m, ok := repo.(storage.Migrator)
	if !ok {
		cmd.Println("store has no schema to migrate")
		return nil
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	cmd.Println("migrations applied")
	return nil
}
