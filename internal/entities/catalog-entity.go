package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Technician struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          null.String `json:"phone"`
	Specialization null.String `json:"specialization"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type Material struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Unit        string      `json:"unit"`
	UnitCost    float64     `json:"unitCost"`
	Stock       float64     `json:"stock"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
