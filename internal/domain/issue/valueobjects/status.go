package valueobjects

import (
	"fmt"
	"strings"
)

// IssueStatus is the lifecycle state of an issue: OPEN -> IN_PROGRESS -> FIXED -> VERIFIED.
type IssueStatus string

const (
	StatusOpen       IssueStatus = "OPEN"
	StatusInProgress IssueStatus = "IN_PROGRESS"
	StatusFixed      IssueStatus = "FIXED"
	StatusVerified   IssueStatus = "VERIFIED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []IssueStatus{
	StatusOpen,
	StatusInProgress,
	StatusFixed,
	StatusVerified,
}

var validStatuses = map[IssueStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusFixed:      true,
	StatusVerified:   true,
}

// workerTransitions holds the only forward step a worker may take from each status.
// FIXED and VERIFIED have none.
var workerTransitions = map[IssueStatus]IssueStatus{
	StatusOpen:       StatusInProgress,
	StatusInProgress: StatusFixed,
}

func (s IssueStatus) String() string {
	return string(s)
}

// DisplayName renders the status for people, e.g. "IN PROGRESS".
func (s IssueStatus) DisplayName() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func (s IssueStatus) IsValid() bool {
	return validStatuses[s]
}

// CanManagerTransitionTo reports whether a manager may move an issue from s to next.
// Managers may pick any other status.
func (s IssueStatus) CanManagerTransitionTo(next IssueStatus) bool {
	return next.IsValid() && next != s
}

// CanWorkerTransitionTo reports whether a worker may move an issue from s to next.
func (s IssueStatus) CanWorkerTransitionTo(next IssueStatus) bool {
	allowed, ok := workerTransitions[s]
	return ok && allowed == next
}

// WorkerNext returns the single status a worker may set from s, if any.
func (s IssueStatus) WorkerNext() (IssueStatus, bool) {
	next, ok := workerTransitions[s]
	return next, ok
}

func (s IssueStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s IssueStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s IssueStatus) IsFixed() bool {
	return s == StatusFixed
}

func (s IssueStatus) IsVerified() bool {
	return s == StatusVerified
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}
