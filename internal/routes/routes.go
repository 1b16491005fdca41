package routes

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-guardian/internal/controllers"
	"asset-guardian/internal/listeners"
	"asset-guardian/internal/repositories"
	"asset-guardian/internal/services"
	"asset-guardian/pkg/config"
	"asset-guardian/pkg/database/postgresql"
	"asset-guardian/pkg/eventbus"
	"asset-guardian/seeders"
)

// InitRouter собирает репозитории, сервисы и контроллеры и регистрирует все маршруты.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	cacheRepo repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	cfg *config.Config,
	logger *zap.Logger,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	// --- 1. РЕПОЗИТОРИИ ---
	assetRepo := repositories.NewAssetRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	fmeaRepo := repositories.NewFMEARepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	technicianRepo := repositories.NewTechnicianRepository(dbConn)
	materialRepo := repositories.NewMaterialRepository(dbConn)
	auditLogRepo := repositories.NewAuditLogRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	// --- 2. СЛУШАТЕЛИ СОБЫТИЙ ---
	listeners.NewAuditLogListener(auditLogRepo, logger).Register(bus)
	listeners.NewCacheInvalidationListener(cacheRepo, logger).Register(bus)

	// --- 3. СЕРВИСЫ ---
	base := services.NewBaseService(cacheRepo, bus, logger)
	recalculator := services.NewMetricsRecalculator(assetRepo, maintenanceRepo, services.ReliabilityConfig(cfg.Metrics), logger)

	assetService := services.NewAssetService(base, assetRepo, maintenanceRepo, txManager, recalculator, logger)
	maintenanceService := services.NewMaintenanceService(base, maintenanceRepo, assetRepo, txManager, recalculator, logger)
	fmeaService := services.NewFMEAService(base, fmeaRepo, assetRepo, txManager, logger)
	reportService := services.NewReportService(base, reportRepo, assetRepo, logger)
	technicianService := services.NewTechnicianService(base, technicianRepo, logger)
	materialService := services.NewMaterialService(base, materialRepo, logger)
	dashboardService := services.NewDashboardService(base, dashboardRepo, cfg.Redis.CacheTTL, logger)
	auditLogService := services.NewAuditLogService(auditLogRepo, logger)

	// --- 4. РОУТЕРЫ ---
	health := controllers.NewHealthController(func(ctx context.Context) bool {
		return postgresql.IsHealthy(ctx, dbConn)
	})
	e.GET("/health", health.Check)

	exportController := controllers.NewExportController(assetService, maintenanceService, logger)

	runAssetRouter(api, assetService, exportController, logger)
	runMaintenanceRouter(api, maintenanceService, exportController, logger)
	runFMEARouter(api, fmeaService, logger)
	runReportRouter(api, reportService, logger)
	runCatalogRouter(api, technicianService, materialService, logger)
	runDashboardRouter(api, dashboardService, logger)
	runAuditLogRouter(api, auditLogService, logger)

	if !cfg.IsProduction() {
		seeder := seeders.New(dbConn, recalculator, logger)
		runSeedRouter(api, services.NewSeedService(base, seeder, logger), logger)
	}

	logger.Info("InitRouter: Создание маршрутов завершено")
}

// registerCRUD вешает стандартный набор маршрутов ресурса на группу.
func registerCRUD[T, C, U any](group *echo.Group, ctrl *controllers.ResourceController[T, C, U]) {
	group.GET("", ctrl.List)
	group.GET("/:id", ctrl.Get)
	group.POST("", ctrl.Create)
	group.PUT("/:id", ctrl.Update)
	group.DELETE("/:id", ctrl.Delete)
}
