package dto

import (
	"github.com/aarondl/null/v8"

	"asset-guardian/pkg/types"
)

// rpn в DTO нет: его всегда пересчитывает сервис, присланное клиентом значение игнорируется.
type CreateFMEADTO struct {
	AssetID            string      `json:"assetId"           validate:"required"`
	FailureMode        string      `json:"failureMode"       validate:"required"`
	Effect             string      `json:"potentialEffect"   validate:"required"`
	Cause              string      `json:"cause"`
	Severity           int         `json:"severity"          validate:"required,rpn_factor"`
	Occurrence         int         `json:"occurrence"        validate:"required,rpn_factor"`
	Detection          int         `json:"detection"         validate:"required,rpn_factor"`
	RecommendedAction  string      `json:"recommendedAction" validate:"required"`
	Responsible        string      `json:"responsible"       validate:"required,max=255"`
	Status             string      `json:"status"            validate:"required,max=100"`
	ImplementationDate *types.Date `json:"implementationDate,omitempty"`
	Effectiveness      null.String `json:"effectiveness"`
}

type UpdateFMEADTO struct {
	FailureMode        *string                     `json:"failureMode,omitempty"       validate:"omitempty,min=1"`
	Effect             *string                     `json:"potentialEffect,omitempty"   validate:"omitempty,min=1"`
	Cause              *string                     `json:"cause,omitempty"`
	Severity           *int                        `json:"severity,omitempty"          validate:"omitempty,rpn_factor"`
	Occurrence         *int                        `json:"occurrence,omitempty"        validate:"omitempty,rpn_factor"`
	Detection          *int                        `json:"detection,omitempty"         validate:"omitempty,rpn_factor"`
	RecommendedAction  *string                     `json:"recommendedAction,omitempty" validate:"omitempty,min=1"`
	Responsible        *string                     `json:"responsible,omitempty"       validate:"omitempty,min=1,max=255"`
	Status             *string                     `json:"status,omitempty"            validate:"omitempty,min=1,max=100"`
	ImplementationDate types.Optional[types.Date]  `json:"implementationDate"`
	Effectiveness      types.Optional[null.String] `json:"effectiveness"`
}
