package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/controllers"
	"asset-guardian/internal/services"
)

func runAssetRouter(
	api *echo.Group,
	assetService services.AssetServiceInterface,
	exportController *controllers.ExportController,
	logger *zap.Logger,
) {
	assetController := controllers.NewAssetController(assetService, logger)

	assets := api.Group("/assets")
	assets.GET("/export", exportController.ExportAssets)
	registerCRUD(assets, assetController.ResourceController)
	assets.POST("/:id/recalculate", assetController.Recalculate)
}
