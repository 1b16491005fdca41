package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/constants"
	"asset-guardian/pkg/types"
)

type MaterialServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error)
	Find(ctx context.Context, id string) (*entities.Material, error)
	Create(ctx context.Context, createDTO dto.CreateMaterialDTO) (*entities.Material, error)
	Update(ctx context.Context, id string, updateDTO dto.UpdateMaterialDTO) (*entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialService struct {
	*BaseService
	repo   repositories.MaterialRepositoryInterface
	logger *zap.Logger
}

func NewMaterialService(base *BaseService, repo repositories.MaterialRepositoryInterface, logger *zap.Logger) MaterialServiceInterface {
	return &MaterialService{BaseService: base, repo: repo, logger: logger}
}

func (s *MaterialService) List(ctx context.Context, filter types.Filter) ([]entities.Material, uint64, error) {
	return s.repo.GetMaterials(ctx, filter)
}

func (s *MaterialService) Find(ctx context.Context, id string) (*entities.Material, error) {
	return s.repo.FindMaterial(ctx, id)
}

func (s *MaterialService) Create(ctx context.Context, d dto.CreateMaterialDTO) (*entities.Material, error) {
	material := &entities.Material{
		ID:          uuid.NewString(),
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Unit:        d.Unit,
		UnitCost:    valueOr(d.UnitCost, 0),
		Stock:       valueOr(d.Stock, 0),
	}
	if err := s.repo.CreateMaterial(ctx, material); err != nil {
		return nil, err
	}

	s.logger.Info("Материал создан", zap.String("id", material.ID), zap.String("code", material.Code))
	s.PublishChange(ctx, constants.TableMaterials, constants.AuditActionCreate, material.ID, nil, material)
	return material, nil
}

func (s *MaterialService) Update(ctx context.Context, id string, d dto.UpdateMaterialDTO) (*entities.Material, error) {
	current, err := s.repo.FindMaterial(ctx, id)
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
	d.Description.Apply(&updated.Description)
	if d.Unit != nil {
		updated.Unit = *d.Unit
	}
	if d.UnitCost != nil {
		updated.UnitCost = *d.UnitCost
	}
	if d.Stock != nil {
		updated.Stock = *d.Stock
	}

	if err := s.repo.UpdateMaterial(ctx, &updated); err != nil {
		return nil, err
	}

	s.PublishChange(ctx, constants.TableMaterials, constants.AuditActionUpdate, id, before, updated)
	return &updated, nil
}

func (s *MaterialService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindMaterial(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteMaterial(ctx, id); err != nil {
		return err
	}

	s.PublishChange(ctx, constants.TableMaterials, constants.AuditActionDelete, id, current, nil)
	return nil
}
