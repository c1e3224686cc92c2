package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixit/internal/application/user/usecases"
	"fixit/internal/infrastructure/cache"
	"fixit/internal/infrastructure/database"
	"fixit/internal/infrastructure/persistence/seeds"
	"fixit/internal/infrastructure/repository"
	"fixit/internal/interfaces/cli/bootstrap"
	"fixit/internal/shared/constants"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default users",
		Long:  `Insert the bootstrap manager and workers. Does nothing when users already exist.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	userRepo := repository.NewUserRepository(database.Get(), app.Log)
	seedUC := usecases.NewSeedUsersUseCase(userRepo, seeds.DefaultUsers, cache.NewNoopDashboardCache(), app.Log)

	inserted, err := seedUC.Execute(cmd.Context())
	if err != nil {
		return err
	}

	if inserted == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Users already exist, nothing to seed")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d default users\n", inserted)
	return nil
}
