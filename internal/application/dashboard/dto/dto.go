package dto

import (
	"fixit/internal/domain/issue"
	"fixit/internal/infrastructure/cache"
)

type WorkerStatsDTO struct {
	WorkerID        string `json:"worker_id"`
	WorkerName      string `json:"worker_name"`
	AssignedIssues  int    `json:"assigned_issues"`
	CompletedIssues int    `json:"completed_issues"`
}

type ManagerDashboardDTO struct {
	TotalIssues      int               `json:"total_issues"`
	OpenIssues       int               `json:"open_issues"`
	InProgressIssues int               `json:"in_progress_issues"`
	FixedIssues      int               `json:"fixed_issues"`
	VerifiedIssues   int               `json:"verified_issues"`
	TotalWorkers     int               `json:"total_workers"`
	TotalPhotos      int64             `json:"total_photos"`
	TotalComments    int64             `json:"total_comments"`
	OverdueIssues    int               `json:"overdue_issues"`
	CompletionRate   float64           `json:"completion_rate"`
	Workers          []*WorkerStatsDTO `json:"workers"`
}

type PersonalDashboardDTO struct {
	AssignedToMe     int     `json:"assigned_to_me"`
	CompletedByMe    int     `json:"completed_by_me"`
	OpenIssues       int     `json:"open_issues"`
	InProgressIssues int     `json:"in_progress_issues"`
	FixedIssues      int     `json:"fixed_issues"`
	CompletionRate   float64 `json:"completion_rate"`
}

// DashboardDTO carries exactly one of Manager or Personal, depending on Role.
type DashboardDTO struct {
	Role     string                `json:"role"`
	Manager  *ManagerDashboardDTO  `json:"manager,omitempty"`
	Personal *PersonalDashboardDTO `json:"personal,omitempty"`
}

func ToManagerDashboardDTO(stats issue.DashboardStats, workers []issue.WorkerStats) *ManagerDashboardDTO {
	result := &ManagerDashboardDTO{
		TotalIssues:      stats.TotalIssues,
		OpenIssues:       stats.OpenIssues,
		InProgressIssues: stats.InProgressIssues,
		FixedIssues:      stats.FixedIssues,
		VerifiedIssues:   stats.VerifiedIssues,
		TotalWorkers:     stats.TotalWorkers,
		TotalPhotos:      stats.TotalPhotos,
		TotalComments:    stats.TotalComments,
		OverdueIssues:    stats.OverdueIssues,
		CompletionRate:   stats.CompletionRate,
		Workers:          make([]*WorkerStatsDTO, 0, len(workers)),
	}
	for _, w := range workers {
		result.Workers = append(result.Workers, &WorkerStatsDTO{
			WorkerID:        w.Worker.ID(),
			WorkerName:      w.Worker.Name(),
			AssignedIssues:  w.AssignedIssues,
			CompletedIssues: w.CompletedIssues,
		})
	}
	return result
}

func ToPersonalDashboardDTO(stats issue.PersonalStats) *PersonalDashboardDTO {
	return &PersonalDashboardDTO{
		AssignedToMe:     stats.AssignedToMe,
		CompletedByMe:    stats.CompletedByMe,
		OpenIssues:       stats.OpenIssues,
		InProgressIssues: stats.InProgressIssues,
		FixedIssues:      stats.FixedIssues,
		CompletionRate:   stats.CompletionRate,
	}
}

// ToCached converts the manager dashboard to its cache representation.
func (d *ManagerDashboardDTO) ToCached() *cache.CachedDashboard {
	cached := &cache.CachedDashboard{
		TotalIssues:      d.TotalIssues,
		OpenIssues:       d.OpenIssues,
		InProgressIssues: d.InProgressIssues,
		FixedIssues:      d.FixedIssues,
		VerifiedIssues:   d.VerifiedIssues,
		TotalWorkers:     d.TotalWorkers,
		TotalPhotos:      d.TotalPhotos,
		TotalComments:    d.TotalComments,
		OverdueIssues:    d.OverdueIssues,
		CompletionRate:   d.CompletionRate,
		Workers:          make([]cache.CachedWorkerStats, 0, len(d.Workers)),
	}
	for _, w := range d.Workers {
		cached.Workers = append(cached.Workers, cache.CachedWorkerStats{
			WorkerID:        w.WorkerID,
			WorkerName:      w.WorkerName,
			AssignedIssues:  w.AssignedIssues,
			CompletedIssues: w.CompletedIssues,
		})
	}
	return cached
}

func FromCached(c *cache.CachedDashboard) *ManagerDashboardDTO {
	result := &ManagerDashboardDTO{
		TotalIssues:      c.TotalIssues,
		OpenIssues:       c.OpenIssues,
		InProgressIssues: c.InProgressIssues,
		FixedIssues:      c.FixedIssues,
		VerifiedIssues:   c.VerifiedIssues,
		TotalWorkers:     c.TotalWorkers,
		TotalPhotos:      c.TotalPhotos,
		TotalComments:    c.TotalComments,
		OverdueIssues:    c.OverdueIssues,
		CompletionRate:   c.CompletionRate,
		Workers:          make([]*WorkerStatsDTO, 0, len(c.Workers)),
	}
	for _, w := range c.Workers {
		result.Workers = append(result.Workers, &WorkerStatsDTO{
			WorkerID:        w.WorkerID,
			WorkerName:      w.WorkerName,
			AssignedIssues:  w.AssignedIssues,
			CompletedIssues: w.CompletedIssues,
		})
	}
	return result
}
