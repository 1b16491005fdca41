package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/services"
	"asset-guardian/pkg/api"
)

// AssetController - CRUD активов плюс ручной пересчет показателей.
type AssetController struct {
	*ResourceController[entities.Asset, dto.CreateAssetDTO, dto.UpdateAssetDTO]
	assetService services.AssetServiceInterface
}

func NewAssetController(assetService services.AssetServiceInterface, logger *zap.Logger) *AssetController {
	return &AssetController{
		ResourceController: NewResourceController[entities.Asset, dto.CreateAssetDTO, dto.UpdateAssetDTO](assetService, "Asset", logger),
		assetService:       assetService,
	}
}

func (ac *AssetController) Recalculate(c echo.Context) error {
	id, err := ac.parseID(c)
	if err != nil {
		return ac.fail(c, err)
	}

	asset, err := ac.assetService.Recalculate(c.Request().Context(), id)
	if err != nil {
		return ac.fail(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, asset)
}
