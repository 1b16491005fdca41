package dto

import "asset-guardian/pkg/types"

// version задается только при создании (1) и клиентом не передается.
type CreateReportDTO struct {
	AssetID     string     `json:"assetId"     validate:"required"`
	Type        string     `json:"type"        validate:"required,report_type"`
	Title       string     `json:"title"       validate:"required,max=255"`
	Content     string     `json:"content"     validate:"required"`
	Author      string     `json:"author"      validate:"required,max=255"`
	Date        types.Date `json:"date"        validate:"required"`
	Attachments []string   `json:"attachments" validate:"omitempty,dive,required,max=2048"`
	Status      string     `json:"status"      validate:"omitempty,report_status"`
}

type UpdateReportDTO struct {
	Type        *string     `json:"type,omitempty"    validate:"omitempty,report_type"`
	Title       *string     `json:"title,omitempty"   validate:"omitempty,min=1,max=255"`
	Content     *string     `json:"content,omitempty" validate:"omitempty,min=1"`
	Author      *string     `json:"author,omitempty"  validate:"omitempty,min=1,max=255"`
	Date        *types.Date `json:"date,omitempty"`
	Attachments []string    `json:"attachments"       validate:"omitempty,dive,required,max=2048"`
	Status      *string     `json:"status,omitempty"  validate:"omitempty,report_status"`
}
