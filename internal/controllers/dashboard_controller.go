package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/services"
	"asset-guardian/pkg/api"
	"asset-guardian/pkg/middleware"
	"asset-guardian/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(ds services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: ds,
		logger:           logger,
	}
}

func (ctrl *DashboardController) GetDashboardStats(c echo.Context) error {
	stats, err := ctrl.dashboardService.GetDashboardStats(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, middleware.LoggerFromContext(c, ctrl.logger))
	}
	return api.SuccessOne(c, http.StatusOK, stats)
}
