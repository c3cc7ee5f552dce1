package main

import (
	"context"
	"database/sql"
	"io/fs"
	"os"
	"strings"

	"sportmed/internal/database/migration"
	dbpostgres "sportmed/internal/database/postgres"
	"sportmed/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply pending SQL migrations in version order. Migrations are read from
app.migration_dir when set, otherwise from the copies built into the binary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := dbpostgres.Connect(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		return applyMigrations(cmd.Context(), cfg.App.MigrationDir, db.SQLDB(), log)
	},
}

func migrationFS(dir string) fs.FS {
	if dir = strings.TrimSpace(dir); dir != "" {
		return os.DirFS(dir)
	}
	return migrations.FS
}

func applyMigrations(ctx context.Context, dir string, db *sql.DB, log *zap.Logger) error {
	r := migration.Runner{FS: migrationFS(dir), Logger: log}
	if err := r.Run(ctx, db); err != nil {
		log.Error("[Migrate] failed", zap.Error(err))
		return err
	}
	return nil
}
