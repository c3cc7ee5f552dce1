package main

import (
	"sportmed/internal/app"
	"sportmed/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// archetypeCachePattern matches every cached archetype list.
const archetypeCachePattern = "archetypes:*"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load archetype reference data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		c, err := app.NewContainer(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: log}
		if err := r.Run(cmd.Context(), c.DB); err != nil {
			log.Error("[Seeder] failed", zap.Error(err))
			return err
		}

		if err := c.Cache.DeleteByPattern(cmd.Context(), archetypeCachePattern); err != nil {
			log.Warn("[Seeder] archetype cache invalidation failed", zap.Error(err))
		}
		return nil
	},
}
