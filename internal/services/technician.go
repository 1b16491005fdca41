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

type TechnicianServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Technician, uint64, error)
	Find(ctx context.Context, id string) (*entities.Technician, error)
	Create(ctx context.Context, createDTO dto.CreateTechnicianDTO) (*entities.Technician, error)
	Update(ctx context.Context, id string, updateDTO dto.UpdateTechnicianDTO) (*entities.Technician, error)
	Delete(ctx context.Context, id string) error
}

type TechnicianService struct {
	*BaseService
	repo   repositories.TechnicianRepositoryInterface
	logger *zap.Logger
}

func NewTechnicianService(base *BaseService, repo repositories.TechnicianRepositoryInterface, logger *zap.Logger) TechnicianServiceInterface {
	return &TechnicianService{BaseService: base, repo: repo, logger: logger}
}

func (s *TechnicianService) List(ctx context.Context, filter types.Filter) ([]entities.Technician, uint64, error) {
	return s.repo.GetTechnicians(ctx, filter)
}

func (s *TechnicianService) Find(ctx context.Context, id string) (*entities.Technician, error) {
	return s.repo.FindTechnician(ctx, id)
}

func (s *TechnicianService) Create(ctx context.Context, d dto.CreateTechnicianDTO) (*entities.Technician, error) {
	status := d.Status
	if status == "" {
		status = constants.TechnicianStatusActive
	}
	technician := &entities.Technician{
		ID:             uuid.NewString(),
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Specialization: d.Specialization,
		Status:         status,
	}
	// Уникальность email проверяет БД, 23505 превращается в AlreadyExistsError
	if err := s.repo.CreateTechnician(ctx, technician); err != nil {
		return nil, err
	}

	s.logger.Info("Техник создан", zap.String("id", technician.ID))
	s.PublishChange(ctx, constants.TableTechnicians, constants.AuditActionCreate, technician.ID, nil, technician)
	return technician, nil
}

func (s *TechnicianService) Update(ctx context.Context, id string, d dto.UpdateTechnicianDTO) (*entities.Technician, error) {
	current, err := s.repo.FindTechnician(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *current
	updated := *current

	if d.Name != nil {
		updated.Name = *d.Name
	}
	if d.Email != nil {
		updated.Email = *d.Email
	}
	d.Phone.Apply(&updated.Phone)
	d.Specialization.Apply(&updated.Specialization)
	if d.Status != nil {
		updated.Status = *d.Status
	}

	if err := s.repo.UpdateTechnician(ctx, &updated); err != nil {
		return nil, err
	}

	s.PublishChange(ctx, constants.TableTechnicians, constants.AuditActionUpdate, id, before, updated)
	return &updated, nil
}

func (s *TechnicianService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindTechnician(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteTechnician(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Техник удален", zap.String("id", id))
	s.PublishChange(ctx, constants.TableTechnicians, constants.AuditActionDelete, id, current, nil)
	return nil
}
