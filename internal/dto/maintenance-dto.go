package dto

import (
	"github.com/aarondl/null/v8"

	"asset-guardian/pkg/types"
)

type MaterialUsageDTO struct {
	MaterialID string  `json:"materialId" validate:"required"`
	Quantity   float64 `json:"quantity"   validate:"gt=0"`
}

type CreateMaintenanceDTO struct {
	AssetID        string             `json:"assetId"        validate:"required"`
	Type           string             `json:"type"           validate:"required,maintenance_type"`
	Description    string             `json:"description"    validate:"required"`
	Cost           *float64           `json:"cost"           validate:"omitempty,gte=0"`
	Date           types.Date         `json:"date"           validate:"required"`
	Deadline       *types.Date        `json:"deadline,omitempty"`
	Status         string             `json:"status"         validate:"required,maintenance_status"`
	Responsible    string             `json:"responsible"    validate:"required,max=255"`
	TechnicianID   null.String        `json:"technicianId"   validate:"omitempty,min=1"`
	Priority       null.String        `json:"priority"       validate:"omitempty,oneof=low medium high critical"`
	Duration       null.Float64       `json:"duration"       validate:"omitempty,gte=0"`
	Notes          null.String        `json:"notes"`
	Materials      []MaterialUsageDTO `json:"materials"      validate:"omitempty,dive"`
	FailureDetails null.String        `json:"failureDetails"`
	Solution       null.String        `json:"solution"`
	Attachments    []string           `json:"attachments"    validate:"omitempty,dive,required,max=2048"`
}

// Nullable-поля обновления - types.Optional: явный null очищает значение, отсутствующий ключ не трогает.
type UpdateMaintenanceDTO struct {
	AssetID        *string                      `json:"assetId,omitempty"     validate:"omitempty,min=1"`
	Type           *string                      `json:"type,omitempty"        validate:"omitempty,maintenance_type"`
	Description    *string                      `json:"description,omitempty" validate:"omitempty,min=1"`
	Cost           *float64                     `json:"cost,omitempty"        validate:"omitempty,gte=0"`
	Date           *types.Date                  `json:"date,omitempty"`
	Deadline       types.Optional[types.Date]   `json:"deadline"`
	Status         *string                      `json:"status,omitempty"      validate:"omitempty,maintenance_status"`
	Responsible    *string                      `json:"responsible,omitempty" validate:"omitempty,min=1,max=255"`
	TechnicianID   types.Optional[null.String]  `json:"technicianId"          validate:"omitempty,min=1"`
	Priority       types.Optional[null.String]  `json:"priority"              validate:"omitempty,oneof=low medium high critical"`
	Duration       types.Optional[null.Float64] `json:"duration"              validate:"omitempty,gte=0"`
	Notes          types.Optional[null.String]  `json:"notes"`
	Materials      []MaterialUsageDTO           `json:"materials"             validate:"omitempty,dive"`
	FailureDetails types.Optional[null.String]  `json:"failureDetails"`
	Solution       types.Optional[null.String]  `json:"solution"`
	Attachments    []string                     `json:"attachments"           validate:"omitempty,dive,required,max=2048"`
}
