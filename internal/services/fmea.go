package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/reliability"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/constants"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
)

type FMEAServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.FMEARecord, uint64, error)
	Find(ctx context.Context, id string) (*entities.FMEARecord, error)
	Create(ctx context.Context, createDTO dto.CreateFMEADTO) (*entities.FMEARecord, error)
	Update(ctx context.Context, id string, updateDTO dto.UpdateFMEADTO) (*entities.FMEARecord, error)
	Delete(ctx context.Context, id string) error
}

type FMEAService struct {
	*BaseService
	repo      repositories.FMEARepositoryInterface
	assetRepo repositories.AssetRepositoryInterface
	txManager repositories.TxManagerInterface
	logger    *zap.Logger
}

func NewFMEAService(
	base *BaseService,
	repo repositories.FMEARepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) FMEAServiceInterface {
	return &FMEAService{BaseService: base, repo: repo, assetRepo: assetRepo, txManager: txManager, logger: logger}
}

func (s *FMEAService) List(ctx context.Context, filter types.Filter) ([]entities.FMEARecord, uint64, error) {
	return s.repo.GetFMEARecords(ctx, filter)
}

func (s *FMEAService) Find(ctx context.Context, id string) (*entities.FMEARecord, error) {
	return s.repo.FindFMEARecord(ctx, id)
}

func (s *FMEAService) Create(ctx context.Context, d dto.CreateFMEADTO) (*entities.FMEARecord, error) {
	rpn, err := computeRPN(d.Severity, d.Occurrence, d.Detection)
	if err != nil {
		return nil, err
	}

	if _, err := s.assetRepo.FindAsset(ctx, d.AssetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("Asset not found: %s", d.AssetID)
		}
		return nil, err
	}

	record := &entities.FMEARecord{
		ID:                 uuid.NewString(),
		AssetID:            d.AssetID,
		FailureMode:        d.FailureMode,
		Effect:             d.Effect,
		Cause:              d.Cause,
		Severity:           d.Severity,
		Occurrence:         d.Occurrence,
		Detection:          d.Detection,
		RPN:                rpn,
		RecommendedAction:  d.RecommendedAction,
		Responsible:        d.Responsible,
		Status:             d.Status,
		ImplementationDate: dateToNull(d.ImplementationDate),
		Effectiveness:      d.Effectiveness,
	}
	if err := s.repo.CreateFMEARecord(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Запись FMEA создана", zap.String("id", record.ID), zap.Int("rpn", record.RPN))
	s.PublishChange(ctx, constants.TableFMEA, constants.AuditActionCreate, record.ID, nil, record)
	return s.repo.FindFMEARecord(ctx, record.ID)
}

// Update пересчитывает RPN из итоговых факторов, даже если менялся только один из них.
func (s *FMEAService) Update(ctx context.Context, id string, d dto.UpdateFMEADTO) (*entities.FMEARecord, error) {
	var before, updated entities.FMEARecord

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindFMEARecordForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		before = *current
		updated = mergeFMEA(*current, d)

		updated.RPN, err = computeRPN(updated.Severity, updated.Occurrence, updated.Detection)
		if err != nil {
			return err
		}
		return s.repo.UpdateFMEARecordInTx(ctx, tx, &updated)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Запись FMEA обновлена", zap.String("id", id), zap.Int("rpn", updated.RPN))
	s.PublishChange(ctx, constants.TableFMEA, constants.AuditActionUpdate, id, before, updated)
	return s.repo.FindFMEARecord(ctx, id)
}

func (s *FMEAService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindFMEARecord(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteFMEARecord(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Запись FMEA удалена", zap.String("id", id))
	s.PublishChange(ctx, constants.TableFMEA, constants.AuditActionDelete, id, current, nil)
	return nil
}

func computeRPN(severity, occurrence, detection int) (int, error) {
	rpn, err := reliability.CalculateRPN(severity, occurrence, detection)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("severity, occurrence and detection must be between %d and %d",
			reliability.MinFactor, reliability.MaxFactor)
	}
	return rpn, nil
}

func mergeFMEA(f entities.FMEARecord, d dto.UpdateFMEADTO) entities.FMEARecord {
	if d.FailureMode != nil {
		f.FailureMode = *d.FailureMode
	}
	if d.Effect != nil {
		f.Effect = *d.Effect
	}
	if d.Cause != nil {
		f.Cause = *d.Cause
	}
	if d.Severity != nil {
		f.Severity = *d.Severity
	}
	if d.Occurrence != nil {
		f.Occurrence = *d.Occurrence
	}
	if d.Detection != nil {
		f.Detection = *d.Detection
	}
	if d.RecommendedAction != nil {
		f.RecommendedAction = *d.RecommendedAction
	}
	if d.Responsible != nil {
		f.Responsible = *d.Responsible
	}
	if d.Status != nil {
		f.Status = *d.Status
	}
	if d.ImplementationDate.Set {
		f.ImplementationDate = dateToNull(&d.ImplementationDate.Value)
	}
	d.Effectiveness.Apply(&f.Effectiveness)
	return f
}
