// pkg/constants/constants.go
package constants

//============== RPN ==============

// Границы факторов severity/occurrence/detection.
const (
	RPNFactorMin = 1
	RPNFactorMax = 10
)

//============== CACHE KEYS ==============

// Префиксы для ключей в Redis/кеше.
const (
	// Сводка для дашборда. Сбрасывается при любом изменении данных.
	CacheKeyDashboardStats = "dashboard:stats"
)

//============== AUDIT ==============

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// Имена таблиц, которые пишутся в журнал аудита.
const (
	TableAssets      = "assets"
	TableMaintenance = "maintenance_records"
	TableFMEA        = "fmea_records"
	TableReports     = "reports"
	TableTechnicians = "technicians"
	TableMaterials   = "materials"
)
