package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fixit/internal/application/report/dto"
	"fixit/internal/application/report/usecases"
	"fixit/internal/infrastructure/database"
	"fixit/internal/infrastructure/repository"
	"fixit/internal/interfaces/cli/bootstrap"
	"fixit/internal/shared/constants"
	"fixit/internal/shared/services/markdown"
)

var (
	env        string
	configPath string
	issueID    string
	outPath    string
	format     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export an issue report",
		Long: `Render the report for one issue (--issue) or the summary of all issues.
The report is written to --out, or to the file name the report suggests when --out is "auto".
Without --out it goes to stdout.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&issueID, "issue", "", "Issue ID; omit for the all-issues summary")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", `Output file, "auto" for the suggested name`)
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format (html, markdown)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if format != "html" && format != "markdown" {
		return fmt.Errorf("unsupported format %q", format)
	}

	app, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	db := database.Get()
	log := app.Log
	userRepo := repository.NewUserRepository(db, log)
	activityRepo := repository.NewActivityLogRepository(db)
	issueRepo := repository.NewIssueRepository(db, activityRepo, userRepo, log)
	renderer := markdown.NewMarkdownService()

	var result *dto.ReportDTO
	if issueID != "" {
		result, err = usecases.NewExportIssueUseCase(issueRepo, activityRepo, userRepo, renderer, log).
			Execute(cmd.Context(), issueID)
	} else {
		result, err = usecases.NewExportAllUseCase(issueRepo, userRepo, renderer, log).
			Execute(cmd.Context())
	}
	if err != nil {
		return err
	}

	return write(cmd, result)
}

func write(cmd *cobra.Command, result *dto.ReportDTO) error {
	content := result.HTML
	filename := result.Filename
	if format == "markdown" {
		content = result.Markdown
		filename = result.MarkdownFilename()
	}

	switch outPath {
	case "":
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	case "auto":
	default:
		filename = outPath
	}

	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", filename)
	return nil
}
