package services

import (
	"context"

	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/repositories"
	"asset-guardian/pkg/types"
)

// AuditLogServiceInterface - журнал только читается через API, пишет его AuditLogListener.
type AuditLogServiceInterface interface {
	List(ctx context.Context, filter types.Filter) ([]entities.AuditLog, uint64, error)
}

type AuditLogService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *zap.Logger
}

func NewAuditLogService(repo repositories.AuditLogRepositoryInterface, logger *zap.Logger) AuditLogServiceInterface {
	return &AuditLogService{repo: repo, logger: logger}
}

func (s *AuditLogService) List(ctx context.Context, filter types.Filter) ([]entities.AuditLog, uint64, error) {
	return s.repo.GetAuditLogs(ctx, filter)
}
