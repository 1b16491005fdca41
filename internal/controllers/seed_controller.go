package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/services"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/middleware"
	"asset-guardian/pkg/utils"
	"asset-guardian/seeders"
)

type SeedResponse struct {
	Message  string          `json:"message"`
	Inserted seeders.Summary `json:"inserted"`
}

// SeedController наполняет базу демонстрационными данными. В production не регистрируется.
type SeedController struct {
	seedService services.SeedServiceInterface
	logger      *zap.Logger
}

func NewSeedController(seedService services.SeedServiceInterface, logger *zap.Logger) *SeedController {
	return &SeedController{seedService: seedService, logger: logger}
}

// Seed - POST /api/seed?fresh=true очищает таблицы перед наполнением.
func (ctrl *SeedController) Seed(c echo.Context) error {
	fresh := c.QueryParam("fresh") == "true"

	summary, err := ctrl.seedService.Seed(c.Request().Context(), fresh)
	if err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusInternalServerError, "Error seeding database", err, nil),
			middleware.LoggerFromContext(c, ctrl.logger))
	}
	return c.JSON(http.StatusOK, SeedResponse{Message: "Database seeded successfully", Inserted: summary})
}
