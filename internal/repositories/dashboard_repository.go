package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/pkg/constants"
)

type DashboardRepositoryInterface interface {
	GetAssetMetrics(ctx context.Context) (*entities.AssetMetrics, error)
	GetMaintenanceMetrics(ctx context.Context) (*entities.MaintenanceMetrics, error)
	GetTopRisks(ctx context.Context, limit uint64) ([]entities.FMEARecord, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

// countWhere - COUNT(*) с фильтром по одному значению колонки.
func countWhere(column string, value interface{}) sq.Sqlizer {
	return sq.Expr("COUNT(*) FILTER (WHERE "+column+" = ?)", value)
}

// 1. Активы: количество по статусам и средние показатели.
// Средние считаются только по активам, для которых уже был расчет.
func (r *DashboardRepository) GetAssetMetrics(ctx context.Context) (*entities.AssetMetrics, error) {
	query, args, err := psql.Select("COUNT(*)").
		Column(countWhere("status", constants.AssetStatusActive)).
		Column(countWhere("status", constants.AssetStatusMaintenance)).
		Columns("COALESCE(AVG(oee), 0)", "COALESCE(AVG(mtbf), 0)", "COALESCE(AVG(mttr), 0)").
		From(assetTable).
		ToSql()
	if err != nil {
		return nil, err
	}

	stats := &entities.AssetMetrics{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&stats.TotalAssets, &stats.ActiveAssets, &stats.InMaintenance,
		&stats.AverageOEE, &stats.AverageMTBF, &stats.AverageMTTR,
	)
	if err != nil {
		r.logger.Error("Ошибка расчета статистики активов", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// 2. Обслуживание: разбивка по типам и статусам, просрочка и общая стоимость.
// Просроченной считается запись с прошедшим deadline и не финальным статусом.
func (r *DashboardRepository) GetMaintenanceMetrics(ctx context.Context) (*entities.MaintenanceMetrics, error) {
	overdueSQL, overdueArgs, err := sq.And{
		sq.Expr("deadline IS NOT NULL"),
		sq.Expr("deadline < NOW()"),
		sq.NotEq{"status": constants.FinalMaintenanceStatuses},
	}.ToSql()
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select("COUNT(*)").
		Column(countWhere("type", constants.MaintenanceTypePreventive)).
		Column(countWhere("type", constants.MaintenanceTypeCorrective)).
		Column(countWhere("type", constants.MaintenanceTypePredictive)).
		Column(countWhere("type", constants.MaintenanceTypeEmergency)).
		Column(countWhere("status", constants.MaintenanceStatusScheduled)).
		Column(countWhere("status", constants.MaintenanceStatusCompleted)).
		Column(sq.Expr("COUNT(*) FILTER (WHERE "+overdueSQL+")", overdueArgs...)).
		Column("COALESCE(SUM(cost), 0)").
		From(maintenanceTable).
		ToSql()
	if err != nil {
		return nil, err
	}

	stats := &entities.MaintenanceMetrics{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&stats.TotalMaintenance,
		&stats.PreventiveCount, &stats.CorrectiveCount, &stats.PredictiveCount, &stats.EmergencyCount,
		&stats.ScheduledCount, &stats.CompletedCount, &stats.OverdueCount,
		&stats.TotalCost,
	)
	if err != nil {
		r.logger.Error("Ошибка расчета статистики обслуживания", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// 3. Топ рисков FMEA по убыванию RPN.
func (r *DashboardRepository) GetTopRisks(ctx context.Context, limit uint64) ([]entities.FMEARecord, error) {
	query, args, err := fmeaSelect().Columns(fmeaFields...).
		OrderBy("f.rpn DESC", "f.id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Ошибка получения топа рисков", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	risks := make([]entities.FMEARecord, 0, limit)
	for rows.Next() {
		record, err := scanFMEA(rows)
		if err != nil {
			return nil, err
		}
		risks = append(risks, record)
	}
	return risks, rows.Err()
}
