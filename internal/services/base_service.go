package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"asset-guardian/internal/events"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/eventbus"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/utils"
)

// EventPublisher - часть eventbus.Bus, нужная сервисам.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

type BaseService struct {
	cache  repositories.CacheRepositoryInterface
	bus    EventPublisher
	logger *zap.Logger
}

func NewBaseService(cache repositories.CacheRepositoryInterface, bus EventPublisher, logger *zap.Logger) *BaseService {
	return &BaseService{cache: cache, bus: bus, logger: logger}
}

// CacheGet получает данные из кэша
func (s *BaseService) CacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		s.logger.Warn("Битые данные в кэше", zap.String("key", key), zap.Error(err))
		return false
	}
	s.logger.Debug("Данные получены из кэша", zap.String("key", key))
	return true
}

// CacheSet сохраняет данные в кэш. Ошибки кэша не фатальны.
func (s *BaseService) CacheSet(ctx context.Context, key string, data interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	serialized, err := json.Marshal(data)
	if err != nil {
		s.logger.Warn("Не удалось сериализовать данные для кэша", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, serialized, ttl); err != nil {
		s.logger.Warn("Не удалось записать в кэш", zap.String("key", key), zap.Error(err))
	}
}

// CacheDelete удаляет ключи из кэша.
func (s *BaseService) CacheDelete(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.logger.Warn("Не удалось удалить ключи из кэша", zap.Strings("keys", keys), zap.Error(err))
	}
}

// PublishChange отправляет событие об изменении записи. Вызывается только после коммита.
func (s *BaseService) PublishChange(ctx context.Context, table, action, recordID string, oldValue, newValue interface{}) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.RecordChangedEvent{
		Table:     table,
		Action:    action,
		RecordID:  recordID,
		OldValue:  oldValue,
		NewValue:  newValue,
		Actor:     utils.GetActorFromCtx(ctx),
		RequestID: utils.GetRequestIDFromCtx(ctx),
	})
}

func dateToNull(d *types.Date) null.Time {
	if d == nil || d.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(d.Time)
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
