package usecases

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"fixit/internal/application/report/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
	"fixit/internal/shared/services/markdown"
)

type ExportAllExecutor interface {
	Execute(ctx context.Context) (*dto.ReportDTO, error)
}

// ExportAllUseCase renders a summary table of every issue.
type ExportAllUseCase struct {
	issueRepo issue.Repository
	userRepo  user.Repository
	renderer  markdown.MarkdownService
	logger    logger.Interface
}

func NewExportAllUseCase(
	issueRepo issue.Repository,
	userRepo user.Repository,
	renderer markdown.MarkdownService,
	log logger.Interface,
) *ExportAllUseCase {
	return &ExportAllUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		renderer:  renderer,
		logger:    log,
	}
}

func (uc *ExportAllUseCase) Execute(ctx context.Context) (*dto.ReportDTO, error) {
	uc.logger.Infow("exporting all issues report")

	var (
		issues []*issue.Issue
		users  []*user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		issues, err = uc.issueRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = uc.userRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load report data", "error", err)
		return nil, err
	}

	if len(issues) == 0 {
		return nil, errors.NewValidationError("No issues to export")
	}

	md := summaryMarkdown(issues, newNameLookup(users))

	const title = "All Issues Report"
	html, err := uc.renderer.Document(title, md)
	if err != nil {
		uc.logger.Errorw("failed to render summary report", "error", err)
		return nil, errors.NewInternalError("Failed to export report")
	}

	return &dto.ReportDTO{
		Title:    title,
		Filename: "issues-report.html",
		Markdown: md,
		HTML:     html,
	}, nil
}

func summaryMarkdown(issues []*issue.Issue, names nameLookup) string {
	now := biztime.NowUTC()
	var b strings.Builder

	b.WriteString("# All Issues Report\n\n")
	fmt.Fprintf(&b, "**Total Issues:** %d  \n", len(issues))
	fmt.Fprintf(&b, "**Generated:** %s\n\n", formatDate(now))

	b.WriteString("| Flat # | Status | Priority | Assigned To | Due Date |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, iss := range issues {
		due := formatOptionalDate(iss.DueDate(), "-")
		if iss.IsOverdue(now) {
			due += " (OVERDUE)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			markdown.EscapeInline(iss.FlatNumber()),
			iss.Status().DisplayName(),
			iss.Priority().String(),
			markdown.EscapeInline(names.assignee(iss)),
			due)
	}

	return b.String()
}
