package services

import (
	"context"
	"errors"
	"sort"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/constants"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/utils"
)

type MaintenanceServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRecord, uint64, error)
	Find(ctx context.Context, id string) (*entities.MaintenanceRecord, error)
	Create(ctx context.Context, createDTO dto.CreateMaintenanceDTO) (*entities.MaintenanceRecord, error)
	Update(ctx context.Context, id string, updateDTO dto.UpdateMaintenanceDTO) (*entities.MaintenanceRecord, error)
	Delete(ctx context.Context, id string) error
}

// MaintenanceService - любая мутация записи пересчитывает показатели владельца
// в той же транзакции, что и сама мутация.
type MaintenanceService struct {
	*BaseService
	repo         repositories.MaintenanceRepositoryInterface
	assetRepo    repositories.AssetRepositoryInterface
	txManager    repositories.TxManagerInterface
	recalculator *MetricsRecalculator
	logger       *zap.Logger
}

func NewMaintenanceService(
	base *BaseService,
	repo repositories.MaintenanceRepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
	txManager repositories.TxManagerInterface,
	recalculator *MetricsRecalculator,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		BaseService:  base,
		repo:         repo,
		assetRepo:    assetRepo,
		txManager:    txManager,
		recalculator: recalculator,
		logger:       logger,
	}
}

func (s *MaintenanceService) List(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRecord, uint64, error) {
	return s.repo.GetMaintenanceRecords(ctx, filter)
}

func (s *MaintenanceService) Find(ctx context.Context, id string) (*entities.MaintenanceRecord, error) {
	return s.repo.FindMaintenanceRecord(ctx, id)
}

func (s *MaintenanceService) Create(ctx context.Context, d dto.CreateMaintenanceDTO) (*entities.MaintenanceRecord, error) {
	if err := checkCorrectiveOnly(d.Type, d.FailureDetails, d.Solution); err != nil {
		return nil, err
	}

	record := &entities.MaintenanceRecord{
		ID:             uuid.NewString(),
		AssetID:        d.AssetID,
		Type:           d.Type,
		Description:    d.Description,
		Cost:           valueOr(d.Cost, 0),
		Date:           d.Date.Time,
		Deadline:       dateToNull(d.Deadline),
		Status:         d.Status,
		Responsible:    d.Responsible,
		TechnicianID:   d.TechnicianID,
		Priority:       d.Priority,
		Duration:       d.Duration,
		Notes:          d.Notes,
		Materials:      toMaterialUsage(d.Materials),
		FailureDetails: d.FailureDetails,
		Solution:       d.Solution,
		Attachments:    utils.NonNil(d.Attachments),
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.lockAsset(ctx, tx, record.AssetID); err != nil {
			return err
		}
		if err := s.repo.CreateMaintenanceRecordInTx(ctx, tx, record); err != nil {
			return err
		}
		_, err := s.recalculator.RecalculateInTx(ctx, tx, record.AssetID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Запись обслуживания создана",
		zap.String("id", record.ID),
		zap.String("assetID", record.AssetID),
		zap.String("type", record.Type),
	)
	s.PublishChange(ctx, constants.TableMaintenance, constants.AuditActionCreate, record.ID, nil, record)
	return s.repo.FindMaintenanceRecord(ctx, record.ID)
}

func (s *MaintenanceService) Update(ctx context.Context, id string, d dto.UpdateMaintenanceDTO) (*entities.MaintenanceRecord, error) {
	var before, updated entities.MaintenanceRecord

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindMaintenanceRecordInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		before = *current
		updated = mergeMaintenance(*current, d)

		if err := checkCorrectiveOnly(updated.Type, d.FailureDetails.Value, d.Solution.Value); err != nil {
			return err
		}
		if updated.Type != constants.MaintenanceTypeCorrective {
			updated.FailureDetails = null.String{}
			updated.Solution = null.String{}
		}

		// Перенос на другой актив: блокируем оба, по возрастанию id
		affected := affectedAssets(before.AssetID, updated.AssetID)
		for _, assetID := range affected {
			if err := s.lockAsset(ctx, tx, assetID); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateMaintenanceRecordInTx(ctx, tx, &updated); err != nil {
			return err
		}
		for _, assetID := range affected {
			if _, err := s.recalculator.RecalculateInTx(ctx, tx, assetID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Запись обслуживания обновлена", zap.String("id", id))
	s.PublishChange(ctx, constants.TableMaintenance, constants.AuditActionUpdate, id, before, updated)
	return s.repo.FindMaintenanceRecord(ctx, id)
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	var deleted entities.MaintenanceRecord

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindMaintenanceRecordInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		deleted = *current

		if err := s.lockAsset(ctx, tx, current.AssetID); err != nil {
			return err
		}
		if err := s.repo.DeleteMaintenanceRecordInTx(ctx, tx, id); err != nil {
			return err
		}
		_, err = s.recalculator.RecalculateInTx(ctx, tx, current.AssetID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("Запись обслуживания удалена", zap.String("id", id), zap.String("assetID", deleted.AssetID))
	s.PublishChange(ctx, constants.TableMaintenance, constants.AuditActionDelete, id, deleted, nil)
	return nil
}

// lockAsset блокирует строку актива. Отсутствующий актив - ошибка клиента, а не 404 самой записи.
func (s *MaintenanceService) lockAsset(ctx context.Context, tx pgx.Tx, assetID string) error {
	_, err := s.assetRepo.FindAssetForUpdateInTx(ctx, tx, assetID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewInvalidInputError("Asset not found: %s", assetID)
	}
	return err
}

func checkCorrectiveOnly(maintenanceType string, failureDetails, solution null.String) error {
	if maintenanceType == constants.MaintenanceTypeCorrective {
		return nil
	}
	if failureDetails.Valid || solution.Valid {
		return apperrors.NewInvalidInputError("failureDetails and solution are only allowed for corrective maintenance")
	}
	return nil
}

func mergeMaintenance(m entities.MaintenanceRecord, d dto.UpdateMaintenanceDTO) entities.MaintenanceRecord {
	if d.AssetID != nil {
		m.AssetID = *d.AssetID
	}
	if d.Type != nil {
		m.Type = *d.Type
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
	if d.Cost != nil {
		m.Cost = *d.Cost
	}
	if d.Date != nil && !d.Date.IsZero() {
		m.Date = d.Date.Time
	}
	if d.Deadline.Set {
		m.Deadline = dateToNull(&d.Deadline.Value)
	}
	if d.Status != nil {
		m.Status = *d.Status
	}
	if d.Responsible != nil {
		m.Responsible = *d.Responsible
	}
	d.TechnicianID.Apply(&m.TechnicianID)
	d.Priority.Apply(&m.Priority)
	d.Duration.Apply(&m.Duration)
	d.Notes.Apply(&m.Notes)
	if d.Materials != nil {
		m.Materials = toMaterialUsage(d.Materials)
	}
	d.FailureDetails.Apply(&m.FailureDetails)
	d.Solution.Apply(&m.Solution)
	if d.Attachments != nil {
		m.Attachments = utils.NonNil(d.Attachments)
	}
	return m
}

// affectedAssets - затронутые активы без повторов, в детерминированном порядке.
func affectedAssets(ids ...string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}

func toMaterialUsage(items []dto.MaterialUsageDTO) []entities.MaterialUsage {
	result := make([]entities.MaterialUsage, 0, len(items))
	for _, item := range items {
		result = append(result, entities.MaterialUsage{MaterialID: item.MaterialID, Quantity: item.Quantity})
	}
	return result
}
