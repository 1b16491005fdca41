package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/controllers"
	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/services"
)

func runReportRouter(api *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	reportController := controllers.NewResourceController[entities.Report, dto.CreateReportDTO, dto.UpdateReportDTO](
		reportService, "Report", logger,
	)

	registerCRUD(api.Group("/reports"), reportController)
}
