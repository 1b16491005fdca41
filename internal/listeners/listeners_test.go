package listeners

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/events"
	"asset-guardian/pkg/constants"
	"asset-guardian/pkg/eventbus"
	"asset-guardian/pkg/types"
)

type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []entities.AuditLog
}

func (r *recordingAuditRepo) GetAuditLogs(context.Context, types.Filter) ([]entities.AuditLog, uint64, error) {
	return nil, 0, nil
}

func (r *recordingAuditRepo) CreateAuditLog(_ context.Context, log *entities.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

type recordingCache struct {
	mu      sync.Mutex
	deleted []string
}

func (c *recordingCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (c *recordingCache) Get(context.Context, string) (string, error) { return "", nil }

func (c *recordingCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, keys...)
	return nil
}

type snapshot struct {
	Code string `json:"code"`
}

func TestAuditLogListener_WritesEntry(t *testing.T) {
	repo := &recordingAuditRepo{}
	bus := eventbus.New(zap.NewNop())
	NewAuditLogListener(repo, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.RecordChangedEvent{
		Table:     constants.TableAssets,
		Action:    constants.AuditActionUpdate,
		RecordID:  "a-1",
		OldValue:  snapshot{Code: "BH-101"},
		NewValue:  snapshot{Code: "BH-102"},
		Actor:     "maria.santos",
		RequestID: "req-7",
	})
	bus.Wait()

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, constants.TableAssets, entry.TableName)
	assert.Equal(t, constants.AuditActionUpdate, entry.Action)
	assert.Equal(t, "a-1", entry.RecordID)
	assert.Equal(t, "maria.santos", entry.Actor)
	assert.Equal(t, "req-7", entry.RequestID)
	assert.JSONEq(t, `{"code":"BH-101"}`, string(entry.OldValue))
	assert.JSONEq(t, `{"code":"BH-102"}`, string(entry.NewValue))
}

func TestAuditLogListener_CreateHasNoOldValue(t *testing.T) {
	repo := &recordingAuditRepo{}
	bus := eventbus.New(zap.NewNop())
	NewAuditLogListener(repo, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.RecordChangedEvent{
		Table:    constants.TableMaterials,
		Action:   constants.AuditActionCreate,
		RecordID: "m-1",
		NewValue: snapshot{Code: "MAT-OLH"},
	})
	bus.Wait()

	require.Len(t, repo.entries, 1)
	assert.Nil(t, repo.entries[0].OldValue)
	assert.Equal(t, json.RawMessage(`{"code":"MAT-OLH"}`), repo.entries[0].NewValue)
}

func TestCacheInvalidationListener_DropsDashboardStats(t *testing.T) {
	cache := &recordingCache{}
	bus := eventbus.New(zap.NewNop())
	NewCacheInvalidationListener(cache, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.RecordChangedEvent{
		Table:    constants.TableMaintenance,
		Action:   constants.AuditActionDelete,
		RecordID: "r-1",
	})
	bus.Wait()

	assert.Equal(t, []string{constants.CacheKeyDashboardStats}, cache.deleted)
}
