package usecases

import (
	"context"

	"fixit/internal/domain/issue"
	"fixit/internal/domain/issue/specifications"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/logger"
)

// RemindOverdueUseCase logs a warning for every issue whose due date has passed and that is not
// yet verified. It runs as a scheduled job; Execute returns the number of overdue issues.
type RemindOverdueUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewRemindOverdueUseCase(issueRepo issue.Repository, log logger.Interface) *RemindOverdueUseCase {
	return &RemindOverdueUseCase{
		issueRepo: issueRepo,
		logger:    log,
	}
}

func (uc *RemindOverdueUseCase) Execute(ctx context.Context) (int, error) {
	issues, err := uc.issueRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load issues for overdue reminder", "error", err)
		return 0, err
	}

	now := biztime.NowUTC()
	overdue := specifications.NewOverdueSpecification(now)

	count := 0
	for _, iss := range issues {
		if !overdue.IsSatisfiedBy(iss) {
			continue
		}
		count++

		assignee := ""
		if iss.AssignedTo() != nil {
			assignee = *iss.AssignedTo()
		}
		uc.logger.Warnw("issue overdue",
			"issue_id", iss.ID(),
			"flat_number", iss.FlatNumber(),
			"status", iss.Status().String(),
			"priority", iss.Priority().String(),
			"due_date", biztime.FormatInBizTimezone(*iss.DueDate(), "2006-01-02"),
			"assigned_to", assignee,
		)
	}

	return count, nil
}
