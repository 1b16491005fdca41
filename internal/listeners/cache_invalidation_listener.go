package listeners

import (
	"context"

	"go.uber.org/zap"

	"asset-guardian/internal/events"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/constants"
	"asset-guardian/pkg/eventbus"
)

// CacheInvalidationListener сбрасывает кеш дашборда после любого изменения данных.
type CacheInvalidationListener struct {
	cache  repositories.CacheRepositoryInterface
	logger *zap.Logger
}

func NewCacheInvalidationListener(cache repositories.CacheRepositoryInterface, logger *zap.Logger) *CacheInvalidationListener {
	return &CacheInvalidationListener{cache: cache, logger: logger}
}

func (l *CacheInvalidationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RecordChangedEventName, l.handleRecordChanged)
	l.logger.Info("CacheInvalidationListener подписан на событие", zap.String("event", events.RecordChangedEventName))
}

func (l *CacheInvalidationListener) handleRecordChanged(ctx context.Context, event eventbus.Event) error {
	if _, ok := event.(events.RecordChangedEvent); !ok {
		return nil
	}
	if err := l.cache.Del(ctx, constants.CacheKeyDashboardStats); err != nil {
		// Кеш живет TTL, поэтому это не фатально
		l.logger.Warn("Не удалось сбросить кеш дашборда", zap.Error(err))
	}
	return nil
}
