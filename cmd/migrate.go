package main

import (
	"context"
	"database/sql"
	root "dgaintel"
	"dgaintel/internal/config"
	"dgaintel/pkg/logger"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateGoose applies the embedded prediction_jobs migrations.
func migrateGoose(ctx context.Context, db *sql.DB, statusOnly bool) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	if statusOnly {
		return goose.StatusContext(ctx, db, "migrations") //nolint: wrapcheck
	}

	return goose.UpContext(ctx, db, "migrations") //nolint: wrapcheck
}

// migrateRiver brings the river queue tables to the latest version and
// returns the version before and after.
func migrateRiver(ctx context.Context, db *sql.DB, statusOnly bool) (int, int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if statusOnly || current >= latest {
		return current, current, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return current, current, fmt.Errorf("could not migrate river queue tables: %w", err)
	}

	return current, latest, nil
}

// migrateCommand constructs the 'migrate' subcommand that brings the
// application and river queue tables to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			statusOnly, _ := cmd.Flags().GetBool("status")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if err := migrateGoose(ctx, db, statusOnly); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			from, to, err := migrateRiver(ctx, db, statusOnly)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "river queue migrations", zap.Int("from", from), zap.Int("to", to))
		},
	}

	cmd.Flags().Bool("status", false, "Only report migration status")

	return cmd
}
