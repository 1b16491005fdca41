package dto

import (
	"github.com/aarondl/null/v8"

	"asset-guardian/pkg/types"
)

type CreateTechnicianDTO struct {
	Name           string      `json:"name"           validate:"required,max=255"`
	Email          string      `json:"email"          validate:"required,email"`
	Phone          null.String `json:"phone"          validate:"omitempty,max=50"`
	Specialization null.String `json:"specialization" validate:"omitempty,max=255"`
	Status         string      `json:"status"         validate:"omitempty,technician_status"`
}

type UpdateTechnicianDTO struct {
	Name           *string                     `json:"name,omitempty"   validate:"omitempty,min=1,max=255"`
	Email          *string                     `json:"email,omitempty"  validate:"omitempty,email"`
	Phone          types.Optional[null.String] `json:"phone"            validate:"omitempty,max=50"`
	Specialization types.Optional[null.String] `json:"specialization"   validate:"omitempty,max=255"`
	Status         *string                     `json:"status,omitempty" validate:"omitempty,technician_status"`
}

type CreateMaterialDTO struct {
	Code        string      `json:"code"        validate:"required,max=50"`
	Name        string      `json:"name"        validate:"required,max=255"`
	Description null.String `json:"description"`
	Unit        string      `json:"unit"        validate:"required,max=20"`
	UnitCost    *float64    `json:"unitCost"    validate:"omitempty,gte=0"`
	Stock       *float64    `json:"stock"       validate:"omitempty,gte=0"`
}

type UpdateMaterialDTO struct {
	Code        *string                     `json:"code,omitempty"     validate:"omitempty,min=1,max=50"`
	Name        *string                     `json:"name,omitempty"     validate:"omitempty,min=1,max=255"`
	Description types.Optional[null.String] `json:"description"`
	Unit        *string                     `json:"unit,omitempty"     validate:"omitempty,min=1,max=20"`
	UnitCost    *float64                    `json:"unitCost,omitempty" validate:"omitempty,gte=0"`
	Stock       *float64                    `json:"stock,omitempty"    validate:"omitempty,gte=0"`
}
