package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"asset-guardian/internal/entities"
	"asset-guardian/pkg/constants"
	apperrors "asset-guardian/pkg/errors"
)

func (s *Seeder) seedTechnicians(ctx context.Context) (int, error) {
	s.logger.Info("  - Наполнение таблицы 'technicians'...")

	inserted := 0
	for _, f := range technicianFixtures {
		technician := &entities.Technician{
			ID:             uuid.NewString(),
			Name:           f.Name,
			Email:          f.Email,
			Phone:          null.StringFrom(f.Phone),
			Specialization: null.StringFrom(f.Specialization),
			Status:         constants.TechnicianStatusActive,
		}
		err := s.technicians.CreateTechnician(ctx, technician)
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("техник %s: %w", f.Email, err)
		}
		inserted++
	}
	return inserted, nil
}

func (s *Seeder) seedMaterials(ctx context.Context) (int, error) {
	s.logger.Info("  - Наполнение таблицы 'materials'...")

	inserted := 0
	for _, f := range materialFixtures {
		material := &entities.Material{
			ID:       uuid.NewString(),
			Code:     f.Code,
			Name:     f.Name,
			Unit:     f.Unit,
			UnitCost: f.UnitCost,
			Stock:    f.Stock,
		}
		err := s.materials.CreateMaterial(ctx, material)
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("материал %s: %w", f.Code, err)
		}
		inserted++
	}
	return inserted, nil
}
