package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/constants"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
)

const assetDuplicateMessage = "Asset with this code or serial number already exists"

type AssetServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error)
	Find(ctx context.Context, id string) (*entities.Asset, error)
	Create(ctx context.Context, createDTO dto.CreateAssetDTO) (*entities.Asset, error)
	Update(ctx context.Context, id string, updateDTO dto.UpdateAssetDTO) (*entities.Asset, error)
	Delete(ctx context.Context, id string) error
	// Recalculate пересчитывает показатели по запросу, вне мутаций обслуживания.
	Recalculate(ctx context.Context, id string) (*entities.Asset, error)
}

type AssetService struct {
	*BaseService
	repo            repositories.AssetRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	txManager       repositories.TxManagerInterface
	recalculator    *MetricsRecalculator
	logger          *zap.Logger
}

func NewAssetService(
	base *BaseService,
	repo repositories.AssetRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	txManager repositories.TxManagerInterface,
	recalculator *MetricsRecalculator,
	logger *zap.Logger,
) AssetServiceInterface {
	return &AssetService{
		BaseService:     base,
		repo:            repo,
		maintenanceRepo: maintenanceRepo,
		txManager:       txManager,
		recalculator:    recalculator,
		logger:          logger,
	}
}

func (s *AssetService) List(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	return s.repo.GetAssets(ctx, filter)
}

// Find возвращает актив вместе с историей обслуживания.
func (s *AssetService) Find(ctx context.Context, id string) (*entities.Asset, error) {
	asset, err := s.repo.FindAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.maintenanceRepo.GetAssetHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	asset.Maintenance = history
	return asset, nil
}

func (s *AssetService) Create(ctx context.Context, d dto.CreateAssetDTO) (*entities.Asset, error) {
	exists, err := s.repo.ExistsByCodeOrSerial(ctx, d.Code, d.SerialNumber, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewAlreadyExistsError(assetDuplicateMessage)
	}

	asset := &entities.Asset{
		ID:              uuid.NewString(),
		Code:            d.Code,
		Name:            d.Name,
		Manufacturer:    d.Manufacturer,
		Model:           d.Model,
		Type:            d.Type,
		Location:        d.Location,
		AcquisitionDate: d.AcquisitionDate.Time,
		EstimatedLife:   valueOr(d.EstimatedLife, 0),
		Cost:            valueOr(d.Cost, 0),
		SerialNumber:    d.SerialNumber,
		Status:          d.Status,
		LastMaintenance: dateToNull(d.LastMaintenance),
		NextMaintenance: dateToNull(d.NextMaintenance),
	}
	if err := s.repo.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	s.logger.Info("Актив создан", zap.String("id", asset.ID), zap.String("code", asset.Code))
	s.PublishChange(ctx, constants.TableAssets, constants.AuditActionCreate, asset.ID, nil, asset)
	return asset, nil
}

func (s *AssetService) Update(ctx context.Context, id string, d dto.UpdateAssetDTO) (*entities.Asset, error) {
	current, err := s.repo.FindAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *current
	updated := *current

	if d.Code != nil {
		updated.Code = *d.Code
	}
	if d.Name != nil {
		updated.Name = *d.Name
	}
	if d.Manufacturer != nil {
		updated.Manufacturer = *d.Manufacturer
	}
	if d.Model != nil {
		updated.Model = *d.Model
	}
	if d.Type != nil {
		updated.Type = *d.Type
	}
	if d.Location != nil {
		updated.Location = *d.Location
	}
	if d.AcquisitionDate != nil && !d.AcquisitionDate.IsZero() {
		updated.AcquisitionDate = d.AcquisitionDate.Time
	}
	if d.EstimatedLife != nil {
		updated.EstimatedLife = *d.EstimatedLife
	}
	if d.Cost != nil {
		updated.Cost = *d.Cost
	}
	if d.SerialNumber != nil {
		updated.SerialNumber = *d.SerialNumber
	}
	if d.Status != nil {
		updated.Status = *d.Status
	}
	if d.NextMaintenance.Set {
		updated.NextMaintenance = dateToNull(&d.NextMaintenance.Value)
	}

	if updated.Code != before.Code || updated.SerialNumber != before.SerialNumber {
		exists, err := s.repo.ExistsByCodeOrSerial(ctx, updated.Code, updated.SerialNumber, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewAlreadyExistsError(assetDuplicateMessage)
		}
	}

	if err := s.repo.UpdateAsset(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Актив обновлен", zap.String("id", id))
	s.PublishChange(ctx, constants.TableAssets, constants.AuditActionUpdate, id, before, updated)
	return &updated, nil
}

func (s *AssetService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindAsset(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteAsset(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Актив удален вместе с историей", zap.String("id", id))
	s.PublishChange(ctx, constants.TableAssets, constants.AuditActionDelete, id, current, nil)
	return nil
}

func (s *AssetService) Recalculate(ctx context.Context, id string) (*entities.Asset, error) {
	var asset *entities.Asset
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.repo.FindAssetForUpdateInTx(ctx, tx, id); err != nil {
			return err
		}
		if _, err := s.recalculator.RecalculateInTx(ctx, tx, id); err != nil {
			return err
		}
		var err error
		asset, err = s.repo.FindAssetForUpdateInTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.PublishChange(ctx, constants.TableAssets, constants.AuditActionUpdate, id, nil, asset)
	return asset, nil
}
