package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixit/internal/infrastructure/database"
	"fixit/internal/infrastructure/migration"
	"fixit/internal/interfaces/cli/bootstrap"
	"fixit/internal/shared/constants"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(func(strategy *migration.GooseStrategy, app *bootstrap.Env) error {
				app.Log.Infow("applying pending migrations", "environment", env, "driver", app.Config.Database.Driver)
				if err := strategy.Migrate(database.Get()); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				return nil
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			return withStrategy(func(strategy *migration.GooseStrategy, app *bootstrap.Env) error {
				app.Log.Infow("rolling back migrations", "environment", env, "steps", steps)
				if err := strategy.MigrateDown(database.Get(), steps); err != nil {
					return fmt.Errorf("down migration failed: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the schema version and every script's state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(func(strategy *migration.GooseStrategy, app *bootstrap.Env) error {
				current, err := strategy.GetVersion(database.Get())
				if err != nil {
					return fmt.Errorf("failed to get migration version: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "environment: %s\n", env)
				fmt.Fprintf(out, "driver:      %s\n", app.Config.Database.Driver)
				fmt.Fprintf(out, "version:     %d\n\n", current)

				return strategy.Status(database.Get())
			})
		},
	}
}

// withStrategy bootstraps config, logging and the database, runs fn with the goose strategy for
// the configured driver and closes the database afterwards.
func withStrategy(fn func(strategy *migration.GooseStrategy, app *bootstrap.Env) error) error {
	app, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := migration.NewGooseStrategy(app.Config.Database.Driver, app.Log)
	if err != nil {
		return err
	}

	if err := fn(strategy, app); err != nil {
		app.Log.Errorw("migrate command failed", "error", err)
		return err
	}
	app.Log.Infow("migrate command finished")
	return nil
}
