package issue

import (
	"time"

	"fixit/internal/domain/user"
)

// DashboardStats is the manager's overview of all issues.
type DashboardStats struct {
	TotalIssues      int
	OpenIssues       int
	InProgressIssues int
	FixedIssues      int
	VerifiedIssues   int
	TotalWorkers     int
	TotalPhotos      int64
	TotalComments    int64
	OverdueIssues    int
	CompletionRate   float64
}

// WorkerStats is one row of the per-worker performance table.
type WorkerStats struct {
	Worker          *user.User
	AssignedIssues  int
	CompletedIssues int
}

// PersonalStats summarizes the issues assigned to a single worker.
type PersonalStats struct {
	AssignedToMe     int
	CompletedByMe    int
	OpenIssues       int
	InProgressIssues int
	FixedIssues      int
	CompletionRate   float64
}

type statusCounts struct {
	total, open, inProgress, fixed, verified int
}

func (c *statusCounts) add(iss *Issue) {
	c.total++
	switch {
	case iss.status.IsOpen():
		c.open++
	case iss.status.IsInProgress():
		c.inProgress++
	case iss.status.IsFixed():
		c.fixed++
	case iss.status.IsVerified():
		c.verified++
	}
}

func completionRate(verified, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(verified) / float64(total) * 100
}

// DashboardStatistics rolls up all issues. completionRate is 0 for an empty set.
func DashboardStatistics(issues []*Issue, users []*user.User, totalPhotos, totalComments int64, now time.Time) DashboardStats {
	var counts statusCounts
	overdue := 0
	for _, iss := range issues {
		counts.add(iss)
		if iss.IsOverdue(now) {
			overdue++
		}
	}

	workers := 0
	for _, u := range users {
		if u.IsWorker() {
			workers++
		}
	}

	return DashboardStats{
		TotalIssues:      counts.total,
		OpenIssues:       counts.open,
		InProgressIssues: counts.inProgress,
		FixedIssues:      counts.fixed,
		VerifiedIssues:   counts.verified,
		TotalWorkers:     workers,
		TotalPhotos:      totalPhotos,
		TotalComments:    totalComments,
		OverdueIssues:    overdue,
		CompletionRate:   completionRate(counts.verified, counts.total),
	}
}

// WorkerStatistics returns one row per worker, in the order given.
func WorkerStatistics(issues []*Issue, workers []*user.User) []WorkerStats {
	byWorker := make(map[string]*statusCounts, len(workers))
	for _, iss := range issues {
		if iss.assignedTo == nil {
			continue
		}
		c, ok := byWorker[*iss.assignedTo]
		if !ok {
			c = &statusCounts{}
			byWorker[*iss.assignedTo] = c
		}
		c.add(iss)
	}

	stats := make([]WorkerStats, 0, len(workers))
	for _, w := range workers {
		row := WorkerStats{Worker: w}
		if c, ok := byWorker[w.ID()]; ok {
			row.AssignedIssues = c.total
			row.CompletedIssues = c.verified
		}
		stats = append(stats, row)
	}
	return stats
}

// WorkerPersonalStatistics scopes the rollup to issues assigned to workerID.
func WorkerPersonalStatistics(issues []*Issue, workerID string) PersonalStats {
	var counts statusCounts
	for _, iss := range issues {
		if iss.IsAssignedTo(workerID) {
			counts.add(iss)
		}
	}

	return PersonalStats{
		AssignedToMe:     counts.total,
		CompletedByMe:    counts.verified,
		OpenIssues:       counts.open,
		InProgressIssues: counts.inProgress,
		FixedIssues:      counts.fixed,
		CompletionRate:   completionRate(counts.verified, counts.total),
	}
}
