package dto

import "asset-guardian/pkg/types"

// Показатели надежности (mtbf, mttr, oee...) в DTO отсутствуют намеренно:
// их пишет только расчет по истории обслуживания.
type CreateAssetDTO struct {
	Code            string      `json:"code"            validate:"required,max=50"`
	Name            string      `json:"name"            validate:"required,max=255"`
	Manufacturer    string      `json:"manufacturer"    validate:"required,max=255"`
	Model           string      `json:"model"           validate:"required,max=255"`
	Type            string      `json:"type"            validate:"required,max=255"`
	Location        string      `json:"location"        validate:"required,max=255"`
	AcquisitionDate types.Date  `json:"acquisitionDate" validate:"required"`
	EstimatedLife   *int        `json:"estimatedLife"   validate:"required,gt=0"`
	Cost            *float64    `json:"cost"            validate:"required,gte=0"`
	SerialNumber    string      `json:"serialNumber"    validate:"required,max=100"`
	Status          string      `json:"status"          validate:"required,asset_status"`
	LastMaintenance *types.Date `json:"lastMaintenance,omitempty"`
	NextMaintenance *types.Date `json:"nextMaintenance,omitempty"`
}

type UpdateAssetDTO struct {
	Code            *string                    `json:"code,omitempty"            validate:"omitempty,min=1,max=50"`
	Name            *string                    `json:"name,omitempty"            validate:"omitempty,min=1,max=255"`
	Manufacturer    *string                    `json:"manufacturer,omitempty"    validate:"omitempty,min=1,max=255"`
	Model           *string                    `json:"model,omitempty"           validate:"omitempty,min=1,max=255"`
	Type            *string                    `json:"type,omitempty"            validate:"omitempty,min=1,max=255"`
	Location        *string                    `json:"location,omitempty"        validate:"omitempty,min=1,max=255"`
	AcquisitionDate *types.Date                `json:"acquisitionDate,omitempty"`
	EstimatedLife   *int                       `json:"estimatedLife,omitempty"   validate:"omitempty,gt=0"`
	Cost            *float64                   `json:"cost,omitempty"            validate:"omitempty,gte=0"`
	SerialNumber    *string                    `json:"serialNumber,omitempty"    validate:"omitempty,min=1,max=100"`
	Status          *string                    `json:"status,omitempty"          validate:"omitempty,asset_status"`
	NextMaintenance types.Optional[types.Date] `json:"nextMaintenance"`
}
