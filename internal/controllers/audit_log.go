package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/services"
	"asset-guardian/pkg/api"
	"asset-guardian/pkg/middleware"
	"asset-guardian/pkg/utils"
)

// AuditLogController - журнал только на чтение.
type AuditLogController struct {
	auditLogService services.AuditLogServiceInterface
	logger          *zap.Logger
}

func NewAuditLogController(auditLogService services.AuditLogServiceInterface, logger *zap.Logger) *AuditLogController {
	return &AuditLogController{auditLogService: auditLogService, logger: logger}
}

func (ctrl *AuditLogController) GetAuditLogs(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.Request().URL.Query())

	logs, total, err := ctrl.auditLogService.List(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, middleware.LoggerFromContext(c, ctrl.logger))
	}
	return api.SuccessList(c, logs, total, filter.Page, filter.Limit)
}
