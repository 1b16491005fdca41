package services

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-guardian/internal/reliability"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/config"
)

// MetricsRecalculator пересчитывает показатели надежности актива по его истории обслуживания.
// Вызывающий обязан держать блокировку строки актива в той же транзакции.
type MetricsRecalculator struct {
	assetRepo       repositories.AssetRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	cfg             reliability.Config
	logger          *zap.Logger
}

// ReliabilityConfig переносит константы расчета из конфигурации приложения.
func ReliabilityConfig(cfg config.MetricsConfig) reliability.Config {
	out := reliability.DefaultConfig()
	if cfg.PlannedProductionHours > 0 {
		out.PlannedProductionHours = cfg.PlannedProductionHours
	}
	if cfg.Performance > 0 {
		out.Performance = cfg.Performance
	}
	if cfg.Quality > 0 {
		out.Quality = cfg.Quality
	}
	return out
}

func NewMetricsRecalculator(
	assetRepo repositories.AssetRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	cfg reliability.Config,
	logger *zap.Logger,
) *MetricsRecalculator {
	return &MetricsRecalculator{assetRepo: assetRepo, maintenanceRepo: maintenanceRepo, cfg: cfg, logger: logger}
}

func (r *MetricsRecalculator) RecalculateInTx(ctx context.Context, tx pgx.Tx, assetID string) (reliability.Result, error) {
	history, err := r.maintenanceRepo.GetAssetEventsInTx(ctx, tx, assetID)
	if err != nil {
		return reliability.Result{}, err
	}

	result := reliability.Calculate(history, r.cfg)

	var lastMaintenance null.Time
	for _, e := range history {
		if !lastMaintenance.Valid || e.Date.After(lastMaintenance.Time) {
			lastMaintenance = null.TimeFrom(e.Date)
		}
	}

	if err := r.assetRepo.UpdateMetricsInTx(ctx, tx, assetID, result.Metrics, lastMaintenance); err != nil {
		return reliability.Result{}, fmt.Errorf("не удалось сохранить показатели актива %s: %w", assetID, err)
	}

	r.logger.Debug("Показатели актива пересчитаны",
		zap.String("assetID", assetID),
		zap.Int("events", len(history)),
		zap.Int("failures", result.FailureCount),
		zap.Float64("mtbf", result.MTBF),
		zap.Float64("oee", result.OEE),
	)
	return result, nil
}
