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

type ExportIssueExecutor interface {
	Execute(ctx context.Context, issueID string) (*dto.ReportDTO, error)
}

// ExportIssueUseCase renders one issue with its photos, comments and history.
type ExportIssueUseCase struct {
	issueRepo    issue.Repository
	activityRepo issue.ActivityLogRepository
	userRepo     user.Repository
	renderer     markdown.MarkdownService
	logger       logger.Interface
}

func NewExportIssueUseCase(
	issueRepo issue.Repository,
	activityRepo issue.ActivityLogRepository,
	userRepo user.Repository,
	renderer markdown.MarkdownService,
	log logger.Interface,
) *ExportIssueUseCase {
	return &ExportIssueUseCase{
		issueRepo:    issueRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		renderer:     renderer,
		logger:       log,
	}
}

func (uc *ExportIssueUseCase) Execute(ctx context.Context, issueID string) (*dto.ReportDTO, error) {
	uc.logger.Infow("exporting issue report", "issue_id", issueID)

	if issueID == "" {
		return nil, errors.NewValidationError("Issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("Issue not found")
	}

	var (
		users    []*user.User
		photos   []*issue.Photo
		comments []*issue.Comment
		entries  []*issue.ActivityLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = uc.userRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		photos, err = uc.issueRepo.ListPhotos(gctx, issueID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = uc.issueRepo.ListComments(gctx, issueID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = uc.activityRepo.ListByIssue(gctx, issueID)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load report data", "issue_id", issueID, "error", err)
		return nil, err
	}

	names := newNameLookup(users)
	md := issueMarkdown(iss, names, photos, comments, entries)

	title := "Issue Report " + iss.FlatNumber()
	html, err := uc.renderer.Document(title, md)
	if err != nil {
		uc.logger.Errorw("failed to render issue report", "issue_id", issueID, "error", err)
		return nil, errors.NewInternalError("Failed to export report")
	}

	return &dto.ReportDTO{
		Title:    title,
		Filename: fmt.Sprintf("issue-report-%s.html", iss.FlatNumber()),
		Markdown: md,
		HTML:     html,
	}, nil
}

type nameLookup map[string]string

func newNameLookup(users []*user.User) nameLookup {
	names := make(nameLookup, len(users))
	for _, u := range users {
		names[u.ID()] = u.Name()
	}
	return names
}

func (n nameLookup) name(userID string) string {
	if name, ok := n[userID]; ok {
		return name
	}
	return "Unknown"
}

func (n nameLookup) assignee(iss *issue.Issue) string {
	if iss.AssignedTo() == nil {
		return "Unassigned"
	}
	return n.name(*iss.AssignedTo())
}

func issueMarkdown(iss *issue.Issue, names nameLookup, photos []*issue.Photo, comments []*issue.Comment, entries []*issue.ActivityLog) string {
	now := biztime.NowUTC()
	var b strings.Builder

	b.WriteString("# Issue Report\n\n")
	b.WriteString(field("Flat Number", iss.FlatNumber()))
	b.WriteString(field("Status", iss.Status().DisplayName()))
	b.WriteString(field("Priority", iss.Priority().String()))
	b.WriteString(field("Created By", names.name(iss.CreatedBy())))
	b.WriteString(field("Assigned To", names.assignee(iss)))
	b.WriteString(field("Created At", formatDate(iss.CreatedAt())))
	if iss.DueDate() != nil {
		due := formatDate(*iss.DueDate())
		if iss.IsOverdue(now) {
			due += " (OVERDUE)"
		}
		b.WriteString(field("Due Date", due))
	}
	if iss.CompletedAt() != nil {
		b.WriteString(field("Completed At", formatDate(*iss.CompletedAt())))
	}

	b.WriteString("\n## Description\n\n")
	b.WriteString(markdown.EscapeInline(iss.Description()))
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n## Photos (%d)\n\n", len(photos))
	for _, p := range photos {
		fmt.Fprintf(&b, "- %s (%s, %s)\n",
			markdown.EscapeInline(p.PhotoPath()),
			markdown.EscapeInline(names.name(p.UploadedBy())),
			formatDate(p.CreatedAt()))
	}

	fmt.Fprintf(&b, "\n## Comments (%d)\n\n", len(comments))
	for _, c := range comments {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n",
			markdown.EscapeInline(names.name(c.UserID())),
			formatDate(c.CreatedAt()),
			markdown.EscapeInline(c.Text()))
	}

	b.WriteString("\n## Activity History\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %s %s\n",
			formatDate(e.CreatedAt()),
			markdown.EscapeInline(names.name(e.UserID())),
			markdown.EscapeInline(e.Describe()))
	}

	return b.String()
}
