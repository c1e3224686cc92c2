package issue

import (
	"fmt"

	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
	"fixit/internal/shared/errors"
)

// CheckStatusChange enforces the role rules of the status lifecycle:
//
//	manager: any status other than the current one
//	worker:  OPEN -> IN_PROGRESS, IN_PROGRESS -> FIXED, and only on issues assigned to them
func CheckStatusChange(actor Actor, iss *Issue, next vo.IssueStatus) error {
	if !next.IsValid() {
		return errors.NewValidationError("Invalid status", string(next))
	}

	switch actor.Role {
	case user.RoleManager:
		if iss.status == next {
			return alreadyInStatus(next)
		}
		return nil
	case user.RoleWorker:
		if !iss.IsAssignedTo(actor.UserID) {
			return errors.NewPermissionError("Workers can only update issues assigned to them")
		}
		if iss.status == next {
			return alreadyInStatus(next)
		}
		if !iss.status.CanWorkerTransitionTo(next) {
			return errors.NewPermissionError(
				fmt.Sprintf("Workers cannot change status from %s to %s", iss.status.DisplayName(), next.DisplayName()))
		}
		return nil
	default:
		return errors.NewPermissionError("Unknown role", string(actor.Role))
	}
}

func alreadyInStatus(s vo.IssueStatus) error {
	return errors.NewValidationError(fmt.Sprintf("issue is already %s", s))
}

// AllowedStatusTargets lists the statuses role may select for an issue currently in current.
func AllowedStatusTargets(role user.Role, current vo.IssueStatus) []vo.IssueStatus {
	switch role {
	case user.RoleManager:
		targets := make([]vo.IssueStatus, 0, len(vo.Statuses)-1)
		for _, s := range vo.Statuses {
			if current.CanManagerTransitionTo(s) {
				targets = append(targets, s)
			}
		}
		return targets
	case user.RoleWorker:
		if next, ok := current.WorkerNext(); ok {
			return []vo.IssueStatus{next}
		}
		return []vo.IssueStatus{}
	default:
		return []vo.IssueStatus{}
	}
}

// AllowedStatusTargetsFor narrows AllowedStatusTargets to what actor may do on iss.
func AllowedStatusTargetsFor(actor Actor, iss *Issue) []vo.IssueStatus {
	if actor.IsWorker() && !iss.IsAssignedTo(actor.UserID) {
		return []vo.IssueStatus{}
	}
	return AllowedStatusTargets(actor.Role, iss.status)
}

func CheckCreateIssue(actor Actor) error {
	if !actor.IsManager() {
		return errors.NewPermissionError("Only managers can create issues")
	}
	return nil
}

func CheckAssign(actor Actor) error {
	if !actor.IsManager() {
		return errors.NewPermissionError("Only managers can assign workers")
	}
	return nil
}

func CheckCreateUser(actor Actor) error {
	if !actor.IsManager() {
		return errors.NewPermissionError("Only managers can add workers")
	}
	return nil
}

// CheckDeleteComment allows the comment's author and any manager.
func CheckDeleteComment(actor Actor, c *Comment) error {
	if actor.IsManager() || c.userID == actor.UserID {
		return nil
	}
	return errors.NewPermissionError("You can only delete your own comments")
}

// CheckDeletePhoto allows the photo's uploader and any manager.
func CheckDeletePhoto(actor Actor, p *Photo) error {
	if actor.IsManager() || p.uploadedBy == actor.UserID {
		return nil
	}
	return errors.NewPermissionError("You can only delete your own photos")
}

// CanView reports whether actor may see iss. Workers see only their assigned issues.
func CanView(actor Actor, iss *Issue) bool {
	switch actor.Role {
	case user.RoleManager:
		return true
	case user.RoleWorker:
		return iss.IsAssignedTo(actor.UserID)
	default:
		return false
	}
}
