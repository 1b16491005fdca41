package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"asset-guardian/internal/reliability"
)

type Asset struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Manufacturer    string    `json:"manufacturer"`
	Model           string    `json:"model"`
	Type            string    `json:"type"`
	Location        string    `json:"location"`
	AcquisitionDate time.Time `json:"acquisitionDate"`
	EstimatedLife   int       `json:"estimatedLife"`
	Cost            float64   `json:"cost"`
	SerialNumber    string    `json:"serialNumber"`
	Status          string    `json:"status"`
	LastMaintenance null.Time `json:"lastMaintenance"`
	NextMaintenance null.Time `json:"nextMaintenance"`

	// Заполняются только расчетом показателей, до первого расчета null
	MTBF         null.Float64 `json:"mtbf"`
	MTTR         null.Float64 `json:"mttr"`
	OEE          null.Float64 `json:"oee"`
	Availability null.Float64 `json:"availability"`
	Performance  null.Float64 `json:"performance"`
	Quality      null.Float64 `json:"quality"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Maintenance []MaintenanceRecord `json:"maintenance,omitempty"`
}

func (a *Asset) ApplyMetrics(m reliability.Metrics) {
	a.MTBF = null.Float64From(m.MTBF)
	a.MTTR = null.Float64From(m.MTTR)
	a.OEE = null.Float64From(m.OEE)
	a.Availability = null.Float64From(m.Availability)
	a.Performance = null.Float64From(m.Performance)
	a.Quality = null.Float64From(m.Quality)
}

// AssetSummary - краткая информация об активе для вложения в другие ресурсы.
type AssetSummary struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
}
