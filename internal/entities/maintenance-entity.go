package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaterialUsage - расход материала в рамках обслуживания. Хранится в jsonb.
type MaterialUsage struct {
	MaterialID string  `json:"materialId"`
	Quantity   float64 `json:"quantity"`
}

type MaintenanceRecord struct {
	ID           string       `json:"id"`
	AssetID      string       `json:"assetId"`
	Type         string       `json:"type"`
	Description  string       `json:"description"`
	Cost         float64      `json:"cost"`
	Date         time.Time    `json:"date"`
	Deadline     null.Time    `json:"deadline"`
	Status       string       `json:"status"`
	Responsible  string       `json:"responsible"`
	TechnicianID null.String  `json:"technicianId"`
	Priority     null.String  `json:"priority"`
	Duration     null.Float64 `json:"duration"`
	Notes        null.String  `json:"notes"`

	Materials []MaterialUsage `json:"materials"`

	// Только для корректирующего обслуживания
	FailureDetails null.String `json:"failureDetails"`
	Solution       null.String `json:"solution"`

	Attachments []string `json:"attachments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Asset *AssetSummary `json:"asset,omitempty"`
}
