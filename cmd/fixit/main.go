package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixit/internal/interfaces/cli/migrate"
	"fixit/internal/interfaces/cli/report"
	"fixit/internal/interfaces/cli/seed"
	"fixit/internal/interfaces/cli/server"
	"fixit/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "fixit",
		Short:        "FixIt - building maintenance issue tracker",
		Long:         `FixIt tracks maintenance issues from report to verified fix, with an HTTP API, migrations and report export.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		report.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
