package constants

// --- СТАТУСЫ АКТИВОВ ---
const (
	AssetStatusActive      = "active"
	AssetStatusInactive    = "inactive"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRetired     = "retired"
)

var AssetStatuses = []string{
	AssetStatusActive,
	AssetStatusInactive,
	AssetStatusMaintenance,
	AssetStatusRetired,
}

// --- ОБСЛУЖИВАНИЕ ---
const (
	MaintenanceTypePreventive = "preventive"
	MaintenanceTypeCorrective = "corrective"
	MaintenanceTypePredictive = "predictive"
	MaintenanceTypeEmergency  = "emergency"
)

var MaintenanceTypes = []string{
	MaintenanceTypePreventive,
	MaintenanceTypeCorrective,
	MaintenanceTypePredictive,
	MaintenanceTypeEmergency,
}

const (
	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

var MaintenanceStatuses = []string{
	MaintenanceStatusScheduled,
	MaintenanceStatusInProgress,
	MaintenanceStatusCompleted,
	MaintenanceStatusCancelled,
}

// Финальные статусы: такие записи не считаются просроченными
var FinalMaintenanceStatuses = []string{
	MaintenanceStatusCompleted,
	MaintenanceStatusCancelled,
}

// --- ОТЧЕТЫ ---
const (
	ReportTypeMaintenance = "maintenance"
	ReportTypeInspection  = "inspection"
	ReportTypeFailure     = "failure"
	ReportTypePerformance = "performance"
)

var ReportTypes = []string{
	ReportTypeMaintenance,
	ReportTypeInspection,
	ReportTypeFailure,
	ReportTypePerformance,
}

const (
	ReportStatusDraft     = "draft"
	ReportStatusPublished = "published"
)

var ReportStatuses = []string{ReportStatusDraft, ReportStatusPublished}

// Версия отчета при создании. При обновлении не увеличивается.
const ReportInitialVersion = 1

// --- ТЕХНИКИ ---
const (
	TechnicianStatusActive   = "active"
	TechnicianStatusInactive = "inactive"
	TechnicianStatusOnLeave  = "on_leave"
)

var TechnicianStatuses = []string{
	TechnicianStatusActive,
	TechnicianStatusInactive,
	TechnicianStatusOnLeave,
}
