package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/controllers"
	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/services"
)

// runCatalogRouter - справочники техников и материалов.
func runCatalogRouter(
	api *echo.Group,
	technicianService services.TechnicianServiceInterface,
	materialService services.MaterialServiceInterface,
	logger *zap.Logger,
) {
	technicianController := controllers.NewResourceController[entities.Technician, dto.CreateTechnicianDTO, dto.UpdateTechnicianDTO](
		technicianService, "Technician", logger,
	)
	materialController := controllers.NewResourceController[entities.Material, dto.CreateMaterialDTO, dto.UpdateMaterialDTO](
		materialService, "Material", logger,
	)

	registerCRUD(api.Group("/technicians"), technicianController)
	registerCRUD(api.Group("/materials"), materialController)
}
