package services

import (
	"context"

	"go.uber.org/zap"

	"asset-guardian/pkg/constants"
	"asset-guardian/seeders"
)

// DatabaseSeeder - то, что нужно сервису от seeders.Seeder.
type DatabaseSeeder interface {
	Run(ctx context.Context, opts seeders.Options) (seeders.Summary, error)
}

type SeedServiceInterface interface {
	Seed(ctx context.Context, fresh bool) (seeders.Summary, error)
}

type SeedService struct {
	*BaseService
	seeder DatabaseSeeder
	logger *zap.Logger
}

func NewSeedService(base *BaseService, seeder DatabaseSeeder, logger *zap.Logger) SeedServiceInterface {
	return &SeedService{BaseService: base, seeder: seeder, logger: logger}
}

// Seed наполняет базу демонстрационными данными. Сидер сам пишет аудит, поэтому событий нет,
// но кеш дашборда после него устаревает.
func (s *SeedService) Seed(ctx context.Context, fresh bool) (seeders.Summary, error) {
	summary, err := s.seeder.Run(ctx, seeders.Options{Fresh: fresh})
	if err != nil {
		s.logger.Error("Ошибка наполнения базы", zap.Error(err))
		return nil, err
	}
	s.CacheDelete(ctx, constants.CacheKeyDashboardStats)
	s.logger.Info("База наполнена демонстрационными данными", zap.Any("summary", summary))
	return summary, nil
}
