package main

import (
	"fmt"

	"sportmed/internal/config"
	"sportmed/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "sportmed",
	Short: "Sports medicine intake and analytics API",
	Long: `sportmed serves the athlete intake questionnaire, specialist
recommendations, archetype comparisons and body metric evolution.`,
	Example: `  # Apply pending migrations, then start the API
  sportmed migrate
  sportmed serve

  # Load archetype reference data
  sportmed seed`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a JSON config file (env vars override it)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// loadRuntime reads configuration and builds the process logger.
func loadRuntime(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.App.Environment)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log.With(zap.String("app", cfg.App.Name)), nil
}
