package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-guardian/internal/dto"
	"asset-guardian/pkg/config"
	"asset-guardian/pkg/constants"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/utils"
)

func newFMEADTO(assetID string, s, o, d int) dto.CreateFMEADTO {
	return dto.CreateFMEADTO{
		AssetID:           assetID,
		FailureMode:       "Desgaste excessivo das lâminas",
		Effect:            "Corte irregular",
		Cause:             "Uso contínuo sem troca programada",
		Severity:          s,
		Occurrence:        o,
		Detection:         d,
		RecommendedAction: "Troca preventiva de lâminas",
		Responsible:       "João Silva",
		Status:            "Em análise",
	}
}

func TestFMEAService_RPNAfterCreateAndUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	asset := mustCreateAsset(t, env, "TG-001", "SN-TG-1")

	created, err := env.fmeaService.Create(ctx, newFMEADTO(asset.ID, 8, 6, 7))
	require.NoError(t, err)
	assert.Equal(t, 336, created.RPN)

	cases := []struct {
		name string
		dto  dto.UpdateFMEADTO
		want int
	}{
		{"severity only", dto.UpdateFMEADTO{Severity: utils.ToPtr(2)}, 2 * 6 * 7},
		{"occurrence and detection", dto.UpdateFMEADTO{Occurrence: utils.ToPtr(1), Detection: utils.ToPtr(10)}, 2 * 1 * 10},
		{"no factor changes", dto.UpdateFMEADTO{Status: utils.ToPtr("Implementado")}, 2 * 1 * 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := env.fmeaService.Update(ctx, created.ID, tc.dto)
			require.NoError(t, err)
			assert.Equal(t, tc.want, updated.RPN)
			assert.Equal(t, updated.Severity*updated.Occurrence*updated.Detection, updated.RPN)
		})
	}
}

func TestFMEAService_UpdateClearsEffectiveness(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	asset := mustCreateAsset(t, env, "FR-003", "SN-FR-1")

	d := newFMEADTO(asset.ID, 5, 4, 3)
	d.Effectiveness = null.StringFrom("Eficaz")
	created, err := env.fmeaService.Create(ctx, d)
	require.NoError(t, err)
	require.True(t, created.Effectiveness.Valid)

	updated, err := env.fmeaService.Update(ctx, created.ID, dto.UpdateFMEADTO{
		Effectiveness: types.Optional[null.String]{Set: true},
	})
	require.NoError(t, err)
	assert.False(t, updated.Effectiveness.Valid)
	assert.Equal(t, 60, updated.RPN)
}

func TestFMEAService_FactorOutOfRange(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	asset := mustCreateAsset(t, env, "TG-001", "SN-TG-1")

	_, err := env.fmeaService.Create(ctx, newFMEADTO(asset.ID, 11, 1, 1))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	created, err := env.fmeaService.Create(ctx, newFMEADTO(asset.ID, 5, 5, 5))
	require.NoError(t, err)

	_, err = env.fmeaService.Update(ctx, created.ID, dto.UpdateFMEADTO{Detection: utils.ToPtr(0)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	stored, err := env.fmeaService.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 125, stored.RPN, "неудачное обновление не меняет запись")
}

func TestFMEAService_UnknownAsset(t *testing.T) {
	env := newTestEnv()

	_, err := env.fmeaService.Create(context.Background(), newFMEADTO("missing", 1, 1, 1))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestReportService_VersionStaysAtOne(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	asset := mustCreateAsset(t, env, "LP-002", "SN-LP-1")

	created, err := env.reportService.Create(ctx, dto.CreateReportDTO{
		AssetID: asset.ID,
		Type:    constants.ReportTypeFailure,
		Title:   "Análise de Falha - Sistema Hidráulico",
		Content: "Análise detalhada da falha.",
		Author:  "Carlos Oliveira",
		Date:    dayN(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, constants.ReportStatusDraft, created.Status)
	assert.Equal(t, []string{}, created.Attachments)

	updated, err := env.reportService.Update(ctx, created.ID, dto.UpdateReportDTO{
		Title:  utils.ToPtr("Análise de Falha - revisada"),
		Status: utils.ToPtr(constants.ReportStatusPublished),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Version)
	assert.Equal(t, "Análise de Falha - revisada", updated.Title)
	assert.Equal(t, created.Content, updated.Content)
}

func TestReportService_UnknownAsset(t *testing.T) {
	env := newTestEnv()

	_, err := env.reportService.Create(context.Background(), dto.CreateReportDTO{
		AssetID: "missing",
		Type:    constants.ReportTypeInspection,
		Title:   "Inspeção",
		Content: "...",
		Author:  "Maria Santos",
		Date:    types.NewDate(historyStart),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestReliabilityConfig(t *testing.T) {
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		cfg := ReliabilityConfig(config.MetricsConfig{})
		assert.Equal(t, 720.0, cfg.PlannedProductionHours)
		assert.Equal(t, 0.90, cfg.Performance)
		assert.Equal(t, 0.95, cfg.Quality)
	})

	t.Run("configured values win", func(t *testing.T) {
		cfg := ReliabilityConfig(config.MetricsConfig{PlannedProductionHours: 168, Performance: 0.8, Quality: 0.99})
		assert.Equal(t, 168.0, cfg.PlannedProductionHours)
		assert.Equal(t, 0.8, cfg.Performance)
		assert.Equal(t, 0.99, cfg.Quality)
	})
}
