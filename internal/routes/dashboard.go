package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/controllers"
	"asset-guardian/internal/services"
)

func runDashboardRouter(api *echo.Group, dashboardService services.DashboardServiceInterface, logger *zap.Logger) {
	dashboardController := controllers.NewDashboardController(dashboardService, logger)

	api.GET("/dashboard/stats", dashboardController.GetDashboardStats)
}

func runAuditLogRouter(api *echo.Group, auditLogService services.AuditLogServiceInterface, logger *zap.Logger) {
	auditLogController := controllers.NewAuditLogController(auditLogService, logger)

	api.GET("/audit-logs", auditLogController.GetAuditLogs)
}

func runSeedRouter(api *echo.Group, seedService services.SeedServiceInterface, logger *zap.Logger) {
	seedController := controllers.NewSeedController(seedService, logger)

	api.POST("/seed", seedController.Seed)
}
