package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/constants"
)

const dashboardTopRisks = 5

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*entities.DashboardStats, error)
}

type DashboardService struct {
	*BaseService
	repo     repositories.DashboardRepositoryInterface
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewDashboardService(
	base *BaseService,
	repo repositories.DashboardRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{BaseService: base, repo: repo, cacheTTL: cacheTTL, logger: logger}
}

// GetDashboardStats читает сводку из кэша, при промахе собирает ее тремя параллельными запросами.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	var cached entities.DashboardStats
	if s.CacheGet(ctx, constants.CacheKeyDashboardStats, &cached) {
		return &cached, nil
	}

	var (
		wg          sync.WaitGroup
		assets      *entities.AssetMetrics
		maintenance *entities.MaintenanceMetrics
		topRisks    []entities.FMEARecord

		errs []error
		mu   sync.Mutex
	)

	addTask := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	addTask(func() (err error) { assets, err = s.repo.GetAssetMetrics(ctx); return })
	addTask(func() (err error) { maintenance, err = s.repo.GetMaintenanceMetrics(ctx); return })
	addTask(func() (err error) { topRisks, err = s.repo.GetTopRisks(ctx, dashboardTopRisks); return })

	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("Ошибки при сборе статистики дашборда", zap.Int("count", len(errs)))
		return nil, errors.Join(errs...)
	}

	stats := &entities.DashboardStats{
		Assets:      *assets,
		Maintenance: *maintenance,
		TopRisks:    topRisks,
	}
	if stats.TopRisks == nil {
		stats.TopRisks = []entities.FMEARecord{}
	}

	s.CacheSet(ctx, constants.CacheKeyDashboardStats, stats, s.cacheTTL)
	return stats, nil
}
