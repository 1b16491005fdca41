package entities

import (
	"encoding/json"
	"time"
)

// AuditLog - запись журнала изменений. Только добавляется.
type AuditLog struct {
	ID        string          `json:"id"`
	TableName string          `json:"tableName"`
	Action    string          `json:"action"`
	RecordID  string          `json:"recordId"`
	OldValue  json.RawMessage `json:"oldValue"`
	NewValue  json.RawMessage `json:"newValue"`
	Actor     string          `json:"actor"`
	RequestID string          `json:"requestId"`
	CreatedAt time.Time       `json:"createdAt"`
}
