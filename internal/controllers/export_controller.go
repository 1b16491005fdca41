package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/services"
	"asset-guardian/pkg/middleware"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/utils"
)

const (
	exportLimit     = 100000 // Выгружаем все для экспорта
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDateFmt   = "02.01.2006"
)

// ExportController выгружает списки в XLSX с теми же фильтрами, что и у списков.
type ExportController struct {
	assetService       services.AssetServiceInterface
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewExportController(
	assetService services.AssetServiceInterface,
	maintenanceService services.MaintenanceServiceInterface,
	logger *zap.Logger,
) *ExportController {
	return &ExportController{assetService: assetService, maintenanceService: maintenanceService, logger: logger}
}

func (c *ExportController) exportFilter(ctx echo.Context) types.Filter {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	filter.Page = 1
	filter.Offset = 0
	filter.Limit = exportLimit
	return filter
}

var assetHeaders = []string{
	"Code", "Name", "Manufacturer", "Model", "Type", "Location", "Serial number", "Status",
	"Acquisition date", "Cost", "Last maintenance", "Next maintenance",
	"MTBF (h)", "MTTR (h)", "Availability", "OEE",
}

func (c *ExportController) ExportAssets(ctx echo.Context) error {
	logger := middleware.LoggerFromContext(ctx, c.logger)
	filter := c.exportFilter(ctx)
	logger.Debug("Экспорт активов", zap.Any("filters", filter.Filter))

	assets, _, err := c.assetService.List(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	rows := make([][]interface{}, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, assetRow(a))
	}
	return c.respondWithXLSX(ctx, "Assets", "assets", assetHeaders, rows)
}

func assetRow(a entities.Asset) []interface{} {
	return []interface{}{
		a.Code, a.Name, a.Manufacturer, a.Model, a.Type, a.Location, a.SerialNumber, a.Status,
		a.AcquisitionDate.Format(exportDateFmt), a.Cost,
		formatNullDate(a.LastMaintenance), formatNullDate(a.NextMaintenance),
		formatNullFloat(a.MTBF), formatNullFloat(a.MTTR),
		formatNullFloat(a.Availability), formatNullFloat(a.OEE),
	}
}

var maintenanceHeaders = []string{
	"Date", "Asset", "Type", "Status", "Priority", "Description", "Responsible",
	"Deadline", "Duration (h)", "Cost", "Failure details", "Solution",
}

func (c *ExportController) ExportMaintenance(ctx echo.Context) error {
	logger := middleware.LoggerFromContext(ctx, c.logger)
	filter := c.exportFilter(ctx)
	logger.Debug("Экспорт обслуживания", zap.Any("filters", filter.Filter))

	records, _, err := c.maintenanceService.List(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, maintenanceRow(r))
	}
	return c.respondWithXLSX(ctx, "Maintenance", "maintenance", maintenanceHeaders, rows)
}

func maintenanceRow(r entities.MaintenanceRecord) []interface{} {
	asset := r.AssetID
	if r.Asset != nil {
		asset = fmt.Sprintf("%s - %s", r.Asset.Code, r.Asset.Name)
	}
	return []interface{}{
		r.Date.Format(exportDateFmt), asset, r.Type, r.Status, r.Priority.String, r.Description, r.Responsible,
		formatNullDate(r.Deadline), formatNullFloat(r.Duration), r.Cost,
		r.FailureDetails.String, r.Solution.String,
	}
}

func formatNullDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(exportDateFmt)
}

func formatNullFloat(f null.Float64) string {
	if !f.Valid {
		return ""
	}
	return fmt.Sprintf("%.2f", f.Float64)
}

func (c *ExportController) respondWithXLSX(ctx echo.Context, sheet, filePrefix string, headers []string, rows [][]interface{}) error {
	logger := middleware.LoggerFromContext(ctx, c.logger)

	f, err := buildWorkbook(sheet, headers, rows)
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("%s_%s.xlsx", filePrefix, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

// buildWorkbook собирает книгу из одного листа: жирная шапка и строки данных.
func buildWorkbook(sheet string, headers []string, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	fail := func(step string, err error) (*excelize.File, error) {
		_ = f.Close()
		return nil, fmt.Errorf("xlsx: %s: %w", step, err)
	}

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fail("имя листа", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fail("шапка", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fail("шапка", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fail("стиль шапки", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, style); err != nil {
		return fail("стиль шапки", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fail("строка", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fail("строка", err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fail("ширина колонок", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return fail("ширина колонок", err)
	}
	return f, nil
}
