package issue

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fixit/internal/application/issue/usecases"
	domain "fixit/internal/domain/issue"
	"fixit/internal/domain/issue/specifications"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
)

type CreateIssueRequest struct {
	Description string     `json:"description"`
	FlatNumber  string     `json:"flat_number" binding:"omitempty,flat_number"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *string    `json:"assignee_id"`
	PhotoPaths  []string   `json:"photo_paths" binding:"omitempty,dive,required"`
}

func (r *CreateIssueRequest) ToCommand(actor domain.Actor) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		Actor:       actor,
		Description: r.Description,
		FlatNumber:  r.FlatNumber,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
		PhotoPaths:  r.PhotoPaths,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AssignWorkerRequest clears the assignee when worker_id is null or omitted. An empty body counts as omitted.
type AssignWorkerRequest struct {
	WorkerID *string `json:"worker_id"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

type AddPhotoRequest struct {
	PhotoPath string `json:"photo_path" binding:"required"`
}

// parseCriteria reads the list filters from the query string. The "shortcut" parameter selects
// one of the predefined filters and ignores the others.
func parseCriteria(c *gin.Context, actor domain.Actor) (specifications.Criteria, error) {
	switch c.Query("shortcut") {
	case "":
	case "mine":
		return specifications.MyIssues(actor.UserID), nil
	case "overdue":
		return specifications.OverdueOnly(), nil
	case "high_priority":
		return specifications.HighPriority(), nil
	case "clear":
		return specifications.Clear(), nil
	default:
		return specifications.Criteria{}, errors.NewValidationError("Invalid shortcut", c.Query("shortcut"))
	}

	criteria := specifications.Criteria{
		Search: strings.TrimSpace(c.Query("search")),
	}

	if s := c.Query("status"); s != "" {
		status, err := vo.NewIssueStatus(s)
		if err != nil {
			return criteria, errors.NewValidationError("Invalid status", s)
		}
		criteria.Status = &status
	}

	if worker := c.Query("worker"); worker != "" {
		criteria.WorkerID = &worker
	}

	if p := c.Query("priority"); p != "" {
		priority, err := vo.NewPriority(p)
		if err != nil {
			return criteria, errors.NewValidationError("Invalid priority", p)
		}
		criteria.Priority = &priority
	}

	if o := c.Query("overdue"); o != "" {
		overdue, err := strconv.ParseBool(o)
		if err != nil {
			return criteria, errors.NewValidationError("Invalid overdue flag", o)
		}
		criteria.Overdue = overdue
	}

	var err error
	if criteria.DueFrom, err = parseDateParam(c, "date_from", false); err != nil {
		return criteria, err
	}
	if criteria.DueTo, err = parseDateParam(c, "date_to", true); err != nil {
		return criteria, err
	}

	return criteria, nil
}

// parseDateParam accepts RFC 3339 timestamps, used as given, or plain YYYY-MM-DD dates in the
// business timezone. A plain date_to covers the whole day.
func parseDateParam(c *gin.Context, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	day, err := biztime.ParseDateInBizTimezone(raw)
	if err != nil {
		return nil, errors.NewValidationError("Invalid "+key, raw)
	}
	t := biztime.StartOfDayUTC(day)
	if endOfDay {
		t = biztime.EndOfDayUTC(day)
	}
	return &t, nil
}
