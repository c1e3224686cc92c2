package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fixit/internal/application/dashboard/dto"
	"fixit/internal/domain/issue"
	"fixit/internal/domain/user"
	"fixit/internal/infrastructure/cache"
	"fixit/internal/shared/biztime"
	"fixit/internal/shared/logger"
)

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error)
}

type GetDashboardQuery struct {
	Actor issue.Actor
}

// GetDashboardUseCase computes role-dependent statistics. Managers see the whole building
// and per-worker numbers; workers see their own assignments.
type GetDashboardUseCase struct {
	issueRepo issue.Repository
	userRepo  user.Repository
	cache     cache.DashboardCache
	logger    logger.Interface
}

func NewGetDashboardUseCase(
	issueRepo issue.Repository,
	userRepo user.Repository,
	dashboardCache cache.DashboardCache,
	log logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		cache:     dashboardCache,
		logger:    log,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error) {
	uc.logger.Debugw("fetching dashboard", "user_id", query.Actor.UserID, "role", query.Actor.Role)

	if query.Actor.IsManager() {
		manager, err := uc.managerDashboard(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardDTO{Role: query.Actor.Role.String(), Manager: manager}, nil
	}

	issues, err := uc.issueRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load issues for dashboard", "error", err)
		return nil, err
	}

	stats := issue.WorkerPersonalStatistics(issues, query.Actor.UserID)
	return &dto.DashboardDTO{
		Role:     query.Actor.Role.String(),
		Personal: dto.ToPersonalDashboardDTO(stats),
	}, nil
}

func (uc *GetDashboardUseCase) managerDashboard(ctx context.Context) (*dto.ManagerDashboardDTO, error) {
	cached, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warnw("failed to read dashboard cache", "error", err)
	} else if cached != nil {
		return dto.FromCached(cached), nil
	}

	var (
		issues        []*issue.Issue
		users         []*user.User
		totalPhotos   int64
		totalComments int64
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

	g.Go(func() error {
		var err error
		totalPhotos, err = uc.issueRepo.CountPhotos(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		totalComments, err = uc.issueRepo.CountComments(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load dashboard data", "error", err)
		return nil, err
	}

	workers := make([]*user.User, 0, len(users))
	for _, u := range users {
		if u.IsWorker() {
			workers = append(workers, u)
		}
	}

	stats := issue.DashboardStatistics(issues, users, totalPhotos, totalComments, biztime.NowUTC())
	result := dto.ToManagerDashboardDTO(stats, issue.WorkerStatistics(issues, workers))

	if err := uc.cache.Set(ctx, result.ToCached()); err != nil {
		uc.logger.Warnw("failed to write dashboard cache", "error", err)
	}

	return result, nil
}
