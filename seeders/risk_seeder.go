package seeders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/reliability"
	"asset-guardian/pkg/constants"
)

func (s *Seeder) seedFMEA(ctx context.Context) (int, error) {
	s.logger.Info("  - Наполнение таблицы 'fmea_records'...")

	assetIDs, err := s.lookupIDs(ctx, "assets", "code")
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID активов: %w", err)
	}

	skip := make(map[string]bool)
	inserted := 0
	for _, f := range fmeaFixtures {
		assetID, ok := assetIDs[f.AssetCode]
		if !ok {
			s.logger.Warn("ПРЕДУПРЕЖДЕНИЕ: актив не найден, пропускаем FMEA", zap.String("code", f.AssetCode))
			continue
		}
		if _, checked := skip[assetID]; !checked {
			seeded, err := s.hasChildren(ctx, constants.TableFMEA, assetID)
			if err != nil {
				return inserted, err
			}
			skip[assetID] = seeded
		}
		if skip[assetID] {
			continue
		}

		rpn, err := reliability.CalculateRPN(f.Severity, f.Occurrence, f.Detection)
		if err != nil {
			return inserted, fmt.Errorf("FMEA %q: %w", f.FailureMode, err)
		}
		record := &entities.FMEARecord{
			ID:                uuid.NewString(),
			AssetID:           assetID,
			FailureMode:       f.FailureMode,
			Effect:            f.Effect,
			Cause:             f.Cause,
			Severity:          f.Severity,
			Occurrence:        f.Occurrence,
			Detection:         f.Detection,
			RPN:               rpn,
			RecommendedAction: f.RecommendedAction,
			Responsible:       f.Responsible,
			Status:            f.Status,
		}
		if err := s.fmea.CreateFMEARecord(ctx, record); err != nil {
			return inserted, fmt.Errorf("FMEA %q: %w", f.FailureMode, err)
		}
		inserted++
	}
	return inserted, nil
}

func (s *Seeder) seedReports(ctx context.Context) (int, error) {
	s.logger.Info("  - Наполнение таблицы 'reports'...")

	assetIDs, err := s.lookupIDs(ctx, "assets", "code")
	if err != nil {
		return 0, fmt.Errorf("ошибка получения ID активов: %w", err)
	}

	skip := make(map[string]bool)
	inserted := 0
	for _, f := range reportFixtures {
		assetID, ok := assetIDs[f.AssetCode]
		if !ok {
			s.logger.Warn("ПРЕДУПРЕЖДЕНИЕ: актив не найден, пропускаем отчет", zap.String("code", f.AssetCode))
			continue
		}
		if _, checked := skip[assetID]; !checked {
			seeded, err := s.hasChildren(ctx, constants.TableReports, assetID)
			if err != nil {
				return inserted, err
			}
			skip[assetID] = seeded
		}
		if skip[assetID] {
			continue
		}

		report := &entities.Report{
			ID:          uuid.NewString(),
			AssetID:     assetID,
			Type:        f.Type,
			Title:       f.Title,
			Content:     f.Content,
			Author:      f.Author,
			Date:        mustDate(f.Date),
			Attachments: f.Attachments,
			Status:      f.Status,
			Version:     constants.ReportInitialVersion,
		}
		if report.Attachments == nil {
			report.Attachments = []string{}
		}
		if err := s.reports.CreateReport(ctx, report); err != nil {
			return inserted, fmt.Errorf("отчет %q: %w", f.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
