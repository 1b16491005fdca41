package seeders

import (
	"context"
	"fmt"
	"sort"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/pkg/constants"
)

// seedMaintenance вставляет историю обслуживания и пересчитывает показатели затронутых активов.
func (s *Seeder) seedMaintenance(ctx context.Context) (int, error) {
	s.logger.Info("  - Наполнение таблицы 'maintenance_records'...")

	assetIDs, err := s.lookupIDs(ctx, "assets", "code")
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID активов: %w", err)
	}
	technicianIDs, err := s.lookupIDs(ctx, "technicians", "email")
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID техников: %w", err)
	}
	materialIDs, err := s.lookupIDs(ctx, "materials", "code")
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID материалов: %w", err)
	}

	byAsset := make(map[string][]maintenanceFixture)
	for _, f := range maintenanceFixtures {
		byAsset[f.AssetCode] = append(byAsset[f.AssetCode], f)
	}
	codes := make([]string, 0, len(byAsset))
	for code := range byAsset {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	inserted := 0
	for _, code := range codes {
		assetID, ok := assetIDs[code]
		if !ok {
			s.logger.Warn("ПРЕДУПРЕЖДЕНИЕ: актив не найден, пропускаем историю", zap.String("code", code))
			continue
		}
		seeded, err := s.hasChildren(ctx, constants.TableMaintenance, assetID)
		if err != nil {
			return inserted, err
		}
		if seeded {
			continue
		}

		fixtures := byAsset[code]
		err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
			if _, err := s.assets.FindAssetForUpdateInTx(ctx, tx, assetID); err != nil {
				return err
			}
			for _, f := range fixtures {
				record := buildMaintenanceRecord(f, assetID, technicianIDs, materialIDs)
				if err := s.maintenance.CreateMaintenanceRecordInTx(ctx, tx, record); err != nil {
					return err
				}
			}
			result, err := s.recalculator.RecalculateInTx(ctx, tx, assetID)
			if err != nil {
				return err
			}
			s.logger.Info("Показатели актива рассчитаны",
				zap.String("code", code),
				zap.Float64("mtbf", result.MTBF),
				zap.Float64("mttr", result.MTTR),
				zap.Float64("oee", result.OEE),
			)
			return nil
		})
		if err != nil {
			return inserted, fmt.Errorf("история актива %s: %w", code, err)
		}
		inserted += len(fixtures)
	}
	return inserted, nil
}

func buildMaintenanceRecord(f maintenanceFixture, assetID string, technicianIDs, materialIDs map[string]string) *entities.MaintenanceRecord {
	record := &entities.MaintenanceRecord{
		ID:          uuid.NewString(),
		AssetID:     assetID,
		Type:        f.Type,
		Description: f.Description,
		Cost:        f.Cost,
		Date:        mustDate(f.Date),
		Status:      f.Status,
		Responsible: f.Responsible,
		Materials:   []entities.MaterialUsage{},
		Attachments: []string{},
	}
	if f.Deadline != "" {
		record.Deadline = null.TimeFrom(mustDate(f.Deadline))
	}
	if id, ok := technicianIDs[f.TechnicianEmail]; ok {
		record.TechnicianID = null.StringFrom(id)
	}
	if f.Priority != "" {
		record.Priority = null.StringFrom(f.Priority)
	}
	if f.Duration > 0 {
		record.Duration = null.Float64From(f.Duration)
	}
	for _, m := range f.Materials {
		if id, ok := materialIDs[m.Code]; ok {
			record.Materials = append(record.Materials, entities.MaterialUsage{MaterialID: id, Quantity: m.Quantity})
		}
	}
	if f.Type == constants.MaintenanceTypeCorrective {
		if f.FailureDetails != "" {
			record.FailureDetails = null.StringFrom(f.FailureDetails)
		}
		if f.Solution != "" {
			record.Solution = null.StringFrom(f.Solution)
		}
	}
	if f.Attachments != nil {
		record.Attachments = f.Attachments
	}
	return record
}
