package seeders

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"asset-guardian/internal/reliability"
	"asset-guardian/internal/repositories"
)

// Имена сидеров в порядке зависимостей.
const (
	EntityAssets      = "assets"
	EntityTechnicians = "technicians"
	EntityMaterials   = "materials"
	EntityMaintenance = "maintenance"
	EntityFMEA        = "fmea"
	EntityReports     = "reports"
)

var AllEntities = []string{
	EntityAssets,
	EntityTechnicians,
	EntityMaterials,
	EntityMaintenance,
	EntityFMEA,
	EntityReports,
}

const seedActor = "seeder"

// Recalculator пересчитывает показатели актива внутри транзакции.
type Recalculator interface {
	RecalculateInTx(ctx context.Context, tx pgx.Tx, assetID string) (reliability.Result, error)
}

type Options struct {
	// Fresh очищает все таблицы перед наполнением.
	Fresh bool
	// Only ограничивает набор сидеров. Пустой список - все.
	Only []string
}

// Summary - сколько записей вставлено каждым сидером.
type Summary map[string]int

type Seeder struct {
	pool         *pgxpool.Pool
	assets       repositories.AssetRepositoryInterface
	technicians  repositories.TechnicianRepositoryInterface
	materials    repositories.MaterialRepositoryInterface
	maintenance  repositories.MaintenanceRepositoryInterface
	fmea         repositories.FMEARepositoryInterface
	reports      repositories.ReportRepositoryInterface
	audit        repositories.AuditLogRepositoryInterface
	txManager    repositories.TxManagerInterface
	recalculator Recalculator
	logger       *zap.Logger
}

func New(pool *pgxpool.Pool, recalculator Recalculator, logger *zap.Logger) *Seeder {
	return &Seeder{
		pool:         pool,
		assets:       repositories.NewAssetRepository(pool),
		technicians:  repositories.NewTechnicianRepository(pool),
		materials:    repositories.NewMaterialRepository(pool),
		maintenance:  repositories.NewMaintenanceRepository(pool),
		fmea:         repositories.NewFMEARepository(pool),
		reports:      repositories.NewReportRepository(pool),
		audit:        repositories.NewAuditLogRepository(pool),
		txManager:    repositories.NewTxManager(pool),
		recalculator: recalculator,
		logger:       logger,
	}
}

// ParseOnly разбирает список сидеров через запятую и проверяет имена.
func ParseOnly(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	known := make(map[string]bool, len(AllEntities))
	for _, e := range AllEntities {
		known[e] = true
	}
	var result []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("неизвестный сидер %q, доступны: %s", name, strings.Join(AllEntities, ", "))
		}
		result = append(result, name)
	}
	return result, nil
}

func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	selected := make(map[string]bool, len(AllEntities))
	if len(opts.Only) == 0 {
		for _, e := range AllEntities {
			selected[e] = true
		}
	} else {
		for _, e := range opts.Only {
			selected[e] = true
		}
	}

	if opts.Fresh {
		if err := s.truncateAll(ctx); err != nil {
			return nil, err
		}
		s.logger.Info("Все таблицы очищены")
	}

	steps := []struct {
		name string
		fn   func(context.Context) (int, error)
	}{
		{EntityAssets, s.seedAssets},
		{EntityTechnicians, s.seedTechnicians},
		{EntityMaterials, s.seedMaterials},
		{EntityMaintenance, s.seedMaintenance},
		{EntityFMEA, s.seedFMEA},
		{EntityReports, s.seedReports},
	}

	summary := make(Summary, len(steps))
	for _, step := range steps {
		if !selected[step.name] {
			continue
		}
		count, err := step.fn(ctx)
		if err != nil {
			return summary, fmt.Errorf("ошибка сидера %s: %w", step.name, err)
		}
		summary[step.name] = count
		s.logger.Info("Сидер выполнен", zap.String("seeder", step.name), zap.Int("inserted", count))
	}
	return summary, nil
}

func (s *Seeder) truncateAll(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `TRUNCATE TABLE audit_logs, reports, fmea_records, maintenance_records,
		materials, technicians, assets CASCADE`)
	if err != nil {
		return fmt.Errorf("не удалось очистить таблицы: %w", err)
	}
	return nil
}

// lookupIDs возвращает map ключ -> id для указанной таблицы.
func (s *Seeder) lookupIDs(ctx context.Context, table, keyColumn string) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf("SELECT %s, id FROM %s", keyColumn, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]string)
	for rows.Next() {
		var key, id string
		if err := rows.Scan(&key, &id); err != nil {
			return nil, err
		}
		ids[key] = id
	}
	return ids, rows.Err()
}

// hasChildren - у актива уже есть записи в таблице; повторный запуск их не дублирует.
func (s *Seeder) hasChildren(ctx context.Context, table, assetID string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE asset_id = $1)", table)
	err := s.pool.QueryRow(ctx, query, assetID).Scan(&exists)
	return exists, err
}
