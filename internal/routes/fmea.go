package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/controllers"
	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/services"
)

func runFMEARouter(api *echo.Group, fmeaService services.FMEAServiceInterface, logger *zap.Logger) {
	fmeaController := controllers.NewResourceController[entities.FMEARecord, dto.CreateFMEADTO, dto.UpdateFMEADTO](
		fmeaService, "FMEA record", logger,
	)

	registerCRUD(api.Group("/fmea"), fmeaController)
}
