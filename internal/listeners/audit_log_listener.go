package listeners

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/events"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/eventbus"
)

// AuditLogListener пишет каждое изменение данных в audit_logs.
type AuditLogListener struct {
	auditRepo repositories.AuditLogRepositoryInterface
	logger    *zap.Logger
}

func NewAuditLogListener(auditRepo repositories.AuditLogRepositoryInterface, logger *zap.Logger) *AuditLogListener {
	return &AuditLogListener{auditRepo: auditRepo, logger: logger}
}

func (l *AuditLogListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RecordChangedEventName, l.handleRecordChanged)
	l.logger.Info("AuditLogListener подписан на событие", zap.String("event", events.RecordChangedEventName))
}

func (l *AuditLogListener) handleRecordChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RecordChangedEvent)
	if !ok {
		return nil
	}

	oldValue, err := marshalSnapshot(e.OldValue)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать старое значение: %w", err)
	}
	newValue, err := marshalSnapshot(e.NewValue)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать новое значение: %w", err)
	}

	entry := &entities.AuditLog{
		ID:        uuid.NewString(),
		TableName: e.Table,
		Action:    e.Action,
		RecordID:  e.RecordID,
		OldValue:  oldValue,
		NewValue:  newValue,
		Actor:     e.Actor,
		RequestID: e.RequestID,
	}
	if err := l.auditRepo.CreateAuditLog(ctx, entry); err != nil {
		return fmt.Errorf("не удалось записать аудит %s/%s: %w", e.Table, e.RecordID, err)
	}

	l.logger.Debug("Запись аудита сохранена",
		zap.String("table", e.Table),
		zap.String("action", e.Action),
		zap.String("recordID", e.RecordID),
		zap.String("actor", e.Actor),
		zap.String("request_id", e.RequestID),
	)
	return nil
}

func marshalSnapshot(v interface{}) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
