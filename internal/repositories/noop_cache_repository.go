package repositories

import (
	"context"
	"time"
)

// NoopCacheRepository используется, когда Redis недоступен: каждый Get - промах.
type NoopCacheRepository struct{}

func NewNoopCacheRepository() CacheRepositoryInterface {
	return NoopCacheRepository{}
}

func (NoopCacheRepository) Get(context.Context, string) (string, error) {
	return "", ErrCacheMiss
}

func (NoopCacheRepository) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (NoopCacheRepository) Del(context.Context, ...string) error {
	return nil
}
