package entities

type AssetMetrics struct {
	TotalAssets   int     `json:"totalAssets"`
	ActiveAssets  int     `json:"activeAssets"`
	InMaintenance int     `json:"inMaintenance"`
	AverageOEE    float64 `json:"averageOEE"`
	AverageMTBF   float64 `json:"averageMTBF"`
	AverageMTTR   float64 `json:"averageMTTR"`
}

type MaintenanceMetrics struct {
	TotalMaintenance int     `json:"totalMaintenance"`
	PreventiveCount  int     `json:"preventiveCount"`
	CorrectiveCount  int     `json:"correctiveCount"`
	PredictiveCount  int     `json:"predictiveCount"`
	EmergencyCount   int     `json:"emergencyCount"`
	ScheduledCount   int     `json:"scheduledCount"`
	CompletedCount   int     `json:"completedCount"`
	OverdueCount     int     `json:"overdueCount"`
	TotalCost        float64 `json:"totalCost"`
}

type DashboardStats struct {
	Assets      AssetMetrics       `json:"assets"`
	Maintenance MaintenanceMetrics `json:"maintenance"`
	// Топ рисков FMEA по RPN
	TopRisks []FMEARecord `json:"topRisks"`
}
