package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/constants"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/utils"
)

type ReportServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.Report, uint64, error)
	Find(ctx context.Context, id string) (*entities.Report, error)
	Create(ctx context.Context, createDTO dto.CreateReportDTO) (*entities.Report, error)
	Update(ctx context.Context, id string, updateDTO dto.UpdateReportDTO) (*entities.Report, error)
	Delete(ctx context.Context, id string) error
}

type reportService struct {
	*BaseService
	reportRepo repositories.ReportRepositoryInterface
	assetRepo  repositories.AssetRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(
	base *BaseService,
	reportRepo repositories.ReportRepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		BaseService: base,
		reportRepo:  reportRepo,
		assetRepo:   assetRepo,
		logger:      logger,
	}
}

func (s *reportService) List(ctx context.Context, filter types.Filter) ([]entities.Report, uint64, error) {
	return s.reportRepo.GetReports(ctx, filter)
}

func (s *reportService) Find(ctx context.Context, id string) (*entities.Report, error) {
	return s.reportRepo.FindReport(ctx, id)
}

func (s *reportService) Create(ctx context.Context, d dto.CreateReportDTO) (*entities.Report, error) {
	if _, err := s.assetRepo.FindAsset(ctx, d.AssetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("Asset not found: %s", d.AssetID)
		}
		return nil, err
	}

	status := d.Status
	if status == "" {
		status = constants.ReportStatusDraft
	}

	report := &entities.Report{
		ID:          uuid.NewString(),
		AssetID:     d.AssetID,
		Type:        d.Type,
		Title:       d.Title,
		Content:     d.Content,
		Author:      d.Author,
		Date:        d.Date.Time,
		Attachments: utils.NonNil(d.Attachments),
		Status:      status,
		Version:     constants.ReportInitialVersion,
	}
	if err := s.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info("Отчет создан", zap.String("id", report.ID), zap.String("assetID", report.AssetID))
	s.PublishChange(ctx, constants.TableReports, constants.AuditActionCreate, report.ID, nil, report)
	return s.reportRepo.FindReport(ctx, report.ID)
}

// Update не меняет version.
func (s *reportService) Update(ctx context.Context, id string, d dto.UpdateReportDTO) (*entities.Report, error) {
	current, err := s.reportRepo.FindReport(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *current
	updated := *current

	if d.Type != nil {
		updated.Type = *d.Type
	}
	if d.Title != nil {
		updated.Title = *d.Title
	}
	if d.Content != nil {
		updated.Content = *d.Content
	}
	if d.Author != nil {
		updated.Author = *d.Author
	}
	if d.Date != nil && !d.Date.IsZero() {
		updated.Date = d.Date.Time
	}
	if d.Attachments != nil {
		updated.Attachments = d.Attachments
	}
	if d.Status != nil {
		updated.Status = *d.Status
	}

	if err := s.reportRepo.UpdateReport(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Отчет обновлен", zap.String("id", id))
	s.PublishChange(ctx, constants.TableReports, constants.AuditActionUpdate, id, before, updated)
	return &updated, nil
}

func (s *reportService) Delete(ctx context.Context, id string) error {
	current, err := s.reportRepo.FindReport(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reportRepo.DeleteReport(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Отчет удален", zap.String("id", id))
	s.PublishChange(ctx, constants.TableReports, constants.AuditActionDelete, id, current, nil)
	return nil
}
