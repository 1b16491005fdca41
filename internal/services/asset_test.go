package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-guardian/internal/dto"
	"asset-guardian/internal/entities"
	"asset-guardian/pkg/constants"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/types"
	"asset-guardian/pkg/utils"
)

var acquired = time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

func newAssetDTO(code, serial string) dto.CreateAssetDTO {
	return dto.CreateAssetDTO{
		Code:            code,
		Name:            "Bomba Hidráulica " + code,
		Manufacturer:    "HydraTech",
		Model:           "HT-1000",
		Type:            "Sistema Hidráulico",
		Location:        "Casa de Bombas",
		AcquisitionDate: types.NewDate(acquired),
		EstimatedLife:   utils.ToPtr(120),
		Cost:            utils.ToPtr(29999.99),
		SerialNumber:    serial,
		Status:          constants.AssetStatusActive,
	}
}

func mustCreateAsset(t *testing.T, env *testEnv, code, serial string) *entities.Asset {
	t.Helper()
	asset, err := env.assetService.Create(context.Background(), newAssetDTO(code, serial))
	require.NoError(t, err)
	return asset
}

func TestAssetService_CreateHasNoMetricsUntilCalculated(t *testing.T) {
	env := newTestEnv()

	asset := mustCreateAsset(t, env, "BH-101", "SN-BH-2023-001")

	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, acquired, asset.AcquisitionDate)
	assert.False(t, asset.MTBF.Valid, "показатели появляются только после расчета")
	assert.False(t, asset.OEE.Valid)
}

func TestAssetService_UniquenessKeepsFirstAssetUnchanged(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	first := mustCreateAsset(t, env, "BH-101", "SN-1")

	t.Run("same code", func(t *testing.T) {
		_, err := env.assetService.Create(ctx, newAssetDTO("BH-101", "SN-2"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	t.Run("same serial number", func(t *testing.T) {
		_, err := env.assetService.Create(ctx, newAssetDTO("BH-102", "SN-1"))
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	t.Run("update onto an existing code", func(t *testing.T) {
		second := mustCreateAsset(t, env, "BH-103", "SN-3")
		_, err := env.assetService.Update(ctx, second.ID, dto.UpdateAssetDTO{Code: utils.ToPtr("BH-101")})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	stored, err := env.assetService.Find(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Name, stored.Name)
	assert.Equal(t, "SN-1", stored.SerialNumber)
}

func TestAssetService_UpdateIsPartial(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	asset := mustCreateAsset(t, env, "PH-201", "SN-PH-1")

	updated, err := env.assetService.Update(ctx, asset.ID, dto.UpdateAssetDTO{
		Status:   utils.ToPtr(constants.AssetStatusMaintenance),
		Location: utils.ToPtr("Área de Conformação"),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.AssetStatusMaintenance, updated.Status)
	assert.Equal(t, "Área de Conformação", updated.Location)
	assert.Equal(t, asset.Code, updated.Code)
	assert.Equal(t, asset.Cost, updated.Cost)
}

func TestAssetService_NotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.assetService.Find(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = env.assetService.Update(ctx, "missing", dto.UpdateAssetDTO{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, env.assetService.Delete(ctx, "missing"), apperrors.ErrNotFound)
}

func TestAssetService_PublishesChangesWithActor(t *testing.T) {
	env := newTestEnv()
	ctx := utils.WithRequestID(utils.WithActor(context.Background(), "joao.silva"), "req-42")

	asset, err := env.assetService.Create(ctx, newAssetDTO("CA-401", "SN-CA-1"))
	require.NoError(t, err)
	require.NoError(t, env.assetService.Delete(ctx, asset.ID))

	published := env.bus.published()
	require.Len(t, published, 2)

	assert.Equal(t, constants.TableAssets, published[0].Table)
	assert.Equal(t, constants.AuditActionCreate, published[0].Action)
	assert.Nil(t, published[0].OldValue)
	assert.Equal(t, "joao.silva", published[0].Actor)
	assert.Equal(t, "req-42", published[0].RequestID)

	assert.Equal(t, constants.AuditActionDelete, published[1].Action)
	assert.Equal(t, asset.ID, published[1].RecordID)
	assert.Nil(t, published[1].NewValue)
}

func TestAssetService_FailedCreatePublishesNothing(t *testing.T) {
	env := newTestEnv()
	mustCreateAsset(t, env, "SR-501", "SN-SR-1")

	_, err := env.assetService.Create(context.Background(), newAssetDTO("SR-501", "SN-SR-2"))
	require.Error(t, err)

	assert.Len(t, env.bus.published(), 1)
}
