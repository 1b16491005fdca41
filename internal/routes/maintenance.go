package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/controllers"
	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/services"
)

func runMaintenanceRouter(
	api *echo.Group,
	maintenanceService services.MaintenanceServiceInterface,
	exportController *controllers.ExportController,
	logger *zap.Logger,
) {
	maintenanceController := controllers.NewResourceController[entities.MaintenanceRecord, dto.CreateMaintenanceDTO, dto.UpdateMaintenanceDTO](
		maintenanceService, "Maintenance record", logger,
	)

	maintenance := api.Group("/maintenance")
	maintenance.GET("/export", exportController.ExportMaintenance)
	registerCRUD(maintenance, maintenanceController)
}
