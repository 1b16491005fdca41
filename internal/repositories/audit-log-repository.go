package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"asset-guardian/internal/entities"
	db "asset-guardian/internal/infrastructure/bd"
	"asset-guardian/pkg/types"
)

const auditLogTable = "audit_logs"

var auditLogFields = []string{
	"id", "table_name", "action", "record_id", "old_value", "new_value", "actor", "request_id", "created_at",
}

var auditLogListSpec = db.ListSpec{
	Filters: map[string]string{
		"tableName": "table_name",
		"action":    "action",
		"recordId":  "record_id",
		"actor":     "actor",
		"requestId": "request_id",
	},
	Lists: map[string]bool{"tableName": true, "action": true, "recordId": true},
	From:  map[string]string{"dateFrom": "created_at"},
	To:    map[string]string{"dateTo": "created_at"},
	Sorts: map[string]string{
		"createdAt": "created_at",
		"tableName": "table_name",
		"action":    "action",
	},
	DefaultSort: "created_at DESC",
	TieBreaker:  "id",
}

type AuditLogRepositoryInterface interface {
	GetAuditLogs(ctx context.Context, filter types.Filter) ([]entities.AuditLog, uint64, error)
	CreateAuditLog(ctx context.Context, log *entities.AuditLog) error
}

type AuditLogRepository struct {
	storage *pgxpool.Pool
}

func NewAuditLogRepository(storage *pgxpool.Pool) AuditLogRepositoryInterface {
	return &AuditLogRepository{storage: storage}
}

func scanAuditLog(row rowScanner) (entities.AuditLog, error) {
	var (
		l                  entities.AuditLog
		oldValue, newValue []byte
	)
	err := row.Scan(&l.ID, &l.TableName, &l.Action, &l.RecordID, &oldValue, &newValue, &l.Actor, &l.RequestID, &l.CreatedAt)
	if oldValue != nil {
		l.OldValue = oldValue
	}
	if newValue != nil {
		l.NewValue = newValue
	}
	return l, err
}

func (r *AuditLogRepository) GetAuditLogs(ctx context.Context, filter types.Filter) ([]entities.AuditLog, uint64, error) {
	return fetchPage(ctx, r.storage, psql.Select().From(auditLogTable), auditLogFields, filter, auditLogListSpec, scanAuditLog)
}

func (r *AuditLogRepository) CreateAuditLog(ctx context.Context, l *entities.AuditLog) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, table_name, action, record_id, old_value, new_value, actor, request_id)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7, $8)
		RETURNING created_at`, auditLogTable)

	err := r.storage.QueryRow(ctx, query,
		l.ID, l.TableName, l.Action, l.RecordID, nullableJSON(l.OldValue), nullableJSON(l.NewValue), l.Actor, l.RequestID,
	).Scan(&l.CreatedAt)
	return mapPgError(err, "")
}

// nullableJSON превращает пустое значение в SQL NULL.
func nullableJSON(raw []byte) *string {
	if len(raw) == 0 {
		return nil
	}
	s := string(raw)
	return &s
}
