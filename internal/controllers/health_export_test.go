package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/services"
	"asset-guardian/pkg/types"
)

func TestHealthController_Check(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		ping         func(ctx context.Context) bool
		wantDatabase string
	}{
		{"database up", func(context.Context) bool { return true }, DatabaseConnected},
		{"database down", func(context.Context) bool { return false }, DatabaseDisconnected},
		{"no pinger", nil, DatabaseDisconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthController(tc.ping)
			h.now = func() time.Time { return fixed }

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
			require.NoError(t, h.Check(c))

			require.Equal(t, http.StatusOK, rec.Code, "сервис жив даже без базы")
			var body HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tc.wantDatabase, body.Database)
			assert.Equal(t, fixed, body.Timestamp)
		})
	}
}

// Для экспорта нужен только List, остальное не вызывается.
type listOnlyAssetService struct {
	services.AssetServiceInterface
	assets     []entities.Asset
	lastFilter types.Filter
}

func (s *listOnlyAssetService) List(_ context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	s.lastFilter = filter
	return s.assets, uint64(len(s.assets)), nil
}

type listOnlyMaintenanceService struct {
	services.MaintenanceServiceInterface
	records []entities.MaintenanceRecord
}

func (s *listOnlyMaintenanceService) List(context.Context, types.Filter) ([]entities.MaintenanceRecord, uint64, error) {
	return s.records, uint64(len(s.records)), nil
}

func TestExportController_ExportAssets(t *testing.T) {
	assetService := &listOnlyAssetService{assets: []entities.Asset{{
		Code:            "BH-101",
		Name:            "Bomba Hidráulica Principal",
		Status:          "active",
		AcquisitionDate: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		MTBF:            null.Float64From(120),
	}}}
	ctrl := NewExportController(assetService, &listOnlyMaintenanceService{}, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/assets/export?status=active&page=3&limit=5", nil), rec)
	require.NoError(t, ctrl.ExportAssets(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentDisposition), "attachment; filename=assets_"))

	assert.Equal(t, 1, assetService.lastFilter.Page, "экспорт игнорирует пагинацию")
	assert.Equal(t, exportLimit, assetService.lastFilter.Limit)
	assert.Equal(t, "active", assetService.lastFilter.Filter["status"])

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Assets")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, assetHeaders, rows[0])
	assert.Equal(t, "BH-101", rows[1][0])
	assert.Equal(t, "05.01.2023", rows[1][8])
	assert.Equal(t, "120.00", rows[1][12])
}

func TestExportController_ExportMaintenance(t *testing.T) {
	maintenanceService := &listOnlyMaintenanceService{records: []entities.MaintenanceRecord{{
		AssetID:        "asset-1",
		Asset:          &entities.AssetSummary{Code: "LP-002", Name: "Laminador de Bobinas"},
		Type:           "corrective",
		Status:         "completed",
		Date:           time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		FailureDetails: null.StringFrom("Vazamento"),
	}}}
	ctrl := NewExportController(&listOnlyAssetService{}, maintenanceService, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/maintenance/export", nil), rec)
	require.NoError(t, ctrl.ExportMaintenance(c))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Maintenance")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "20.02.2024", rows[1][0])
	assert.Equal(t, "LP-002 - Laminador de Bobinas", rows[1][1])
	assert.Equal(t, "Vazamento", rows[1][10])
}

func TestBuildWorkbook(t *testing.T) {
	t.Run("rows under a bold header", func(t *testing.T) {
		f, err := buildWorkbook("Assets", []string{"Code", "Name"}, [][]interface{}{{"BH-101", "Bomba"}, {"LP-002", "Laminador"}})
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Assets")
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"Code", "Name"}, {"BH-101", "Bomba"}, {"LP-002", "Laminador"}}, rows)

		styleID, err := f.GetCellStyle("Assets", "B1")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		require.NotNil(t, style.Font)
		assert.True(t, style.Font.Bold)
	})

	t.Run("no columns is an error", func(t *testing.T) {
		f, err := buildWorkbook("Assets", nil, nil)
		assert.Error(t, err)
		assert.Nil(t, f)
	})
}

func TestExportController_WorkbookErrorIsServerError(t *testing.T) {
	ctrl := NewExportController(&listOnlyAssetService{}, &listOnlyMaintenanceService{}, zap.NewNop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/assets/export", nil), rec)
	require.NoError(t, ctrl.respondWithXLSX(c, "Assets", "assets", nil, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}
