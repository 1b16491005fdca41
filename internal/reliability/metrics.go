// Package reliability считает показатели надежности актива по истории обслуживания
// и риск FMEA (RPN). Функции пакета чистые: без БД и без побочных эффектов.
package reliability

import (
	"sort"
	"time"
)

const (
	msPerHour = 3_600_000

	DefaultPlannedProductionHours = 24 * 30
	DefaultPerformance            = 0.90
	DefaultQuality                = 0.95

	CorrectiveType = "corrective"
)

// Config - константы расчета. Performance и Quality не вычисляются из данных.
type Config struct {
	PlannedProductionHours float64
	Performance            float64
	Quality                float64
}

func DefaultConfig() Config {
	return Config{
		PlannedProductionHours: DefaultPlannedProductionHours,
		Performance:            DefaultPerformance,
		Quality:                DefaultQuality,
	}
}

// Event - одна запись обслуживания в истории актива.
type Event struct {
	Date time.Time
	Type string
}

type Metrics struct {
	MTBF         float64 `json:"mtbf"`
	MTTR         float64 `json:"mttr"`
	OEE          float64 `json:"oee"`
	Availability float64 `json:"availability"`
	Performance  float64 `json:"performance"`
	Quality      float64 `json:"quality"`
}

type Result struct {
	Metrics
	FailureCount int `json:"failureCount"`
	// В миллисекундах
	TotalUptime   int64 `json:"totalUptime"`
	TotalDowntime int64 `json:"totalDowntime"`
}

// Calculate считает MTBF/MTTR/OEE по истории обслуживания.
//
// Интервал перед корректирующим обслуживанием засчитывается и в uptime, и в downtime.
func Calculate(history []Event, cfg Config) Result {
	if len(history) < 2 {
		return Result{}
	}

	events := make([]Event, len(history))
	copy(events, history)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	var res Result
	for i := 1; i < len(events); i++ {
		uptime := events[i].Date.Sub(events[i-1].Date).Milliseconds()
		res.TotalUptime += uptime

		if events[i].Type == CorrectiveType {
			res.FailureCount++
			res.TotalDowntime += uptime
		}
	}

	if res.FailureCount > 0 {
		res.MTBF = float64(res.TotalUptime) / float64(int64(res.FailureCount)*msPerHour)
		res.MTTR = float64(res.TotalDowntime) / float64(int64(res.FailureCount)*msPerHour)
	}

	planned := cfg.PlannedProductionHours
	if planned > 0 {
		downtimeHours := float64(res.TotalDowntime) / msPerHour
		res.Availability = (planned - downtimeHours) / planned
	}
	res.Performance = cfg.Performance
	res.Quality = cfg.Quality
	res.OEE = res.Availability * res.Performance * res.Quality

	return res
}
