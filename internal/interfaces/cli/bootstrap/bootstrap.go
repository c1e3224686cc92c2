// Package bootstrap loads configuration and opens the database for the CLI commands.
package bootstrap

import (
	"fmt"

	"fixit/internal/infrastructure/config"
	"fixit/internal/infrastructure/database"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/logger"
)

// Env is the set of process-wide services a command runs with.
type Env struct {
	Config *config.Config
	Log    logger.Interface
}

// Init loads the configuration for env, sets up logging and the business timezone, and opens
// the database. Callers close the database with database.Close.
func Init(env, configPath string) (*Env, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{
		Config: cfg,
		Log:    logger.NewLogger(),
	}, nil
}

// GinMode maps an environment name onto a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
