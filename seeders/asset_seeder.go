package seeders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/pkg/constants"
	"asset-guardian/pkg/utils"
)

func (s *Seeder) seedAssets(ctx context.Context) (int, error) {
	s.logger.Info("  - Наполнение таблицы 'assets'...")

	inserted := 0
	for _, f := range assetFixtures {
		exists, err := s.assets.ExistsByCodeOrSerial(ctx, f.Code, f.SerialNumber, "")
		if err != nil {
			return inserted, err
		}
		if exists {
			s.logger.Debug("Актив уже существует, пропускаем", zap.String("code", f.Code))
			continue
		}

		asset := &entities.Asset{
			ID:              uuid.NewString(),
			Code:            f.Code,
			Name:            f.Name,
			Manufacturer:    f.Manufacturer,
			Model:           f.Model,
			Type:            f.Type,
			Location:        f.Location,
			AcquisitionDate: mustDate(f.AcquisitionDate),
			EstimatedLife:   f.EstimatedLife,
			Cost:            f.Cost,
			SerialNumber:    f.SerialNumber,
			Status:          f.Status,
			NextMaintenance: null.TimeFrom(mustDate(f.NextMaintenance)),
		}
		if err := s.assets.CreateAsset(ctx, asset); err != nil {
			return inserted, fmt.Errorf("актив %s: %w", f.Code, err)
		}
		if err := s.auditCreate(ctx, constants.TableAssets, asset.ID, asset); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// auditCreate фиксирует созданную сидером запись в журнале аудита.
func (s *Seeder) auditCreate(ctx context.Context, table, recordID string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.audit.CreateAuditLog(ctx, &entities.AuditLog{
		ID:        uuid.NewString(),
		TableName: table,
		Action:    constants.AuditActionCreate,
		RecordID:  recordID,
		NewValue:  raw,
		Actor:     seedActor,
		RequestID: utils.GetRequestIDFromCtx(ctx),
	})
}
